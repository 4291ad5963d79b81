package curriculum

// catalog is the full syllabus, one entry per level. Subject order matters:
// it is the order shown in the selection menu. The 3ème list opens with the
// two exam-preparation entries.
var catalog = []levelCatalog{
	{
		level: Sixieme,
		subjects: []Subject{
			{
				Name: "Mathématiques",
				Topics: []string{
					"Nombres entiers : écriture et comparaison",
					"Nombres décimaux : repérage et opérations",
					"Addition, soustraction et multiplication",
					"Division euclidienne",
					"Fractions : partage et quotient",
					"Proportionnalité : premières notions",
					"Pourcentages : appliquer un taux",
					"Organisation et gestion de données",
					"Droites, demi-droites et segments",
					"Droites parallèles et perpendiculaires",
					"Le cercle : vocabulaire et construction",
					"Les angles : nommer, mesurer, tracer",
					"Figures usuelles (triangles, quadrilatères)",
					"Symétrie axiale : construction et propriétés",
					"Périmètres et longueurs",
					"Aires : rectangle, carré, triangle rectangle",
					"Volumes : pavé droit",
					"Espace : patrons et perspectives",
				},
			},
			{
				Name: "Français",
				Topics: []string{
					"Le monstre, aux limites de l’humain (Contes et légendes)",
					"Récits d’aventures (Robinson Crusoé, L’Odyssée)",
					"Récits de création (Bible, Métamorphoses d’Ovide)",
					"La ruse et le mensonge (Fables, Renart)",
					"Grammaire : Classes grammaticales",
					"Grammaire : Fonctions (Sujet, COD, Attribut)",
					"Conjugaison : Présent de l’indicatif",
					"Conjugaison : Imparfait et Passé Simple",
					"Conjugaison : Passé composé",
					"Orthographe : Accords dans le groupe nominal",
					"Orthographe : Accord verbe-sujet",
					"Lexique : Formation des mots (préfixes, suffixes)",
					CustomTopicTrigger,
				},
			},
			{
				Name: "Histoire-Géographie",
				Topics: []string{
					"Les débuts de l’humanité (Paléolithique/Néolithique)",
					"Premiers États, premières écritures (Orient ancien)",
					"Le monde des cités grecques",
					"Rome : du mythe à l’histoire",
					"La naissance du monothéisme juif",
					"L’Empire romain dans le monde antique",
					"Habiter une métropole (Mégapoles)",
					"Habiter un espace à fortes contraintes",
					"Habiter les littoraux",
					"Le monde habité (Répartition de la population)",
				},
			},
			{
				Name: "SVT",
				Topics: []string{
					"Développement et reproduction des êtres vivants",
					"Cycle de vie et milieu de vie",
					"La matière organique et sa transformation",
					"Besoins alimentaires de l’homme",
					"Classification des êtres vivants (liens de parenté)",
					"La planète Terre : paysages et activité géologique",
					"La cellule : unité du vivant",
				},
			},
			{
				Name: "Physique-Chimie",
				Topics: []string{
					"États et constitution de la matière",
					"Mélanges et séparation (décantation, filtration)",
					"Mouvement : trajectoire et vitesse",
					"Énergie : formes et conversions",
					"Signal et information",
				},
			},
			{
				Name: "Technologie",
				Topics: []string{
					"Besoin et fonction d’usage",
					"Fonction technique et solutions techniques",
					"Les familles de matériaux",
					"Énergies : sources et chaine d'énergie",
					"Algorithmique : déplacements et boucles",
					"L’ordinateur et les périphériques",
				},
			},
			{
				Name: "Anglais",
				Topics: []string{
					"Se présenter (Be, Have got)",
					"La famille (Génitif)",
					"La maison et les pièces",
					"Les habitudes (Présent simple)",
					"L’heure et la date",
					"Les pays anglophones",
					"Exprimer ses goûts (Like/Hate)",
				},
			},
			{
				Name: "Allemand",
				Topics: []string{
					"Se présenter (Wie heißt du?)",
					"Compter et l'âge",
					"La famille",
					"Les couleurs et les jours",
					"L'école en Allemagne",
				},
			},
			{
				Name: "EMC",
				Topics: []string{
					"Le collégien et la communauté éducative",
					"La laïcité à l'école",
					"Les droits et devoirs de l'enfant",
					"L'égalité filles-garçons",
				},
			},
			{
				Name: "Arts Plastiques",
				Topics: []string{
					"La représentation du monde",
					"La ressemblance",
					"Les couleurs et leurs mélanges",
					"La matérialité (outils et supports)",
				},
			},
			{
				Name: "Éducation Musicale",
				Topics: []string{
					"La voix et le souffle",
					"Le rythme et la pulsation",
					"Timbre et hauteur",
					"Écoute comparée",
				},
			},
		},
	},
	{
		level: Cinquieme,
		subjects: []Subject{
			{
				Name: "Mathématiques",
				Topics: []string{
					"Priorités opératoires",
					"Nombres relatifs : repérage et comparaison",
					"Nombres relatifs : addition et soustraction",
					"Fractions : égalité et simplification",
					"Fractions : addition et soustraction (m.d)",
					"Calcul littéral : simplifier une expression",
					"Calcul littéral : distributivité simple",
					"Proportionnalité : échelles, vitesse, pourcentages",
					"Statistiques : moyenne et fréquence",
					"Symétrie centrale",
					"Angles et parallélisme (alternes-internes)",
					"Triangles : inégalité triangulaire et construction",
					"Somme des angles d'un triangle",
					"Parallélogrammes : propriétés et construction",
					"Aires et périmètres (figures usuelles)",
					"Prismes et cylindres : volumes",
				},
			},
			{
				Name: "Français",
				Topics: []string{
					"Le voyage et l’aventure (Marco Polo, Vendredi)",
					"Vivre en société, participer à la société (Molière)",
					"Regarder le monde, inventer des mondes (SF/Fantasy)",
					"Agir sur le monde : Héros et héroïsmes (Chevalerie)",
					"L’homme est-il maître de la nature ?",
					"Grammaire : Expansion du nom (adj, compl, relative)",
					"Conjugaison : Temps composés de l'indicatif",
					"Conjugaison : Le conditionnel",
					"Analyse de phrase : Juxtaposition, coordination",
					CustomTopicTrigger,
				},
			},
			{
				Name: "Histoire-Géographie",
				Topics: []string{
					"L’Empire byzantin et l’Europe carolingienne",
					"L’Islam : pouvoirs, sociétés et cultures",
					"La féodalité et l’Église au Moyen Âge",
					"Formation de l’État monarchique en France",
					"Le monde au temps de Charles Quint et Soliman",
					"Humanisme, Renaissance et réformes religieuses",
					"La croissance démographique et ses effets",
					"Richesse et pauvreté dans le monde",
					"L’alimentation : nourrir les hommes",
					"L’eau et l’énergie : gestion des ressources",
					"Le changement global",
				},
			},
			{
				Name: "Physique-Chimie",
				Topics: []string{
					"L’eau dans tous ses états",
					"Mélanges aqueux et corps purs",
					"Solubilité et miscibilité",
					"Masse et volume (Masse volumique)",
					"Les changements d’état",
					"Circuit électrique en série",
					"Circuit électrique en dérivation",
					"Sens du courant et symboles normalisés",
					"Conducteurs et isolants",
					"Sources et propagation de la lumière",
					"Le système Soleil-Terre-Lune",
				},
			},
			{
				Name: "SVT",
				Topics: []string{
					"La respiration chez les êtres vivants",
					"La répartition des êtres vivants",
					"Le fonctionnement de l’organisme à l’effort",
					"La digestion et l’apport des nutriments",
					"L’élimination des déchets par l’organisme",
					"La circulation sanguine",
					"Géologie : phénomènes externes (érosion)",
				},
			},
			{
				Name: "Technologie",
				Topics: []string{
					"Design et innovation",
					"Modélisation 3D (SketchUp/Tinkercad)",
					"Les réseaux informatiques (Architecture)",
					"Programmation : Capteurs et actionneurs",
					"Habitat et ouvrages (Structure, Ponts)",
				},
			},
			{
				Name: "Anglais",
				Topics: []string{
					"Daily routine (Adverbes de fréquence)",
					"Capacités et talents (Can/Can't)",
					"Description physique détaillée",
					"Prétérit simple (Verbes réguliers/irréguliers)",
					"Comparatifs et superlatifs",
					"Nourriture et recettes",
					"Légendes arthuriennes",
				},
			},
			{
				Name: "Espagnol",
				Topics: []string{
					"Saluer et se présenter (Ser/Llamarse)",
					"La salle de classe et le matériel",
					"La famille et les animaux",
					"Description physique (Tener/Llevar)",
					"Les goûts (Gustar)",
					"Les nombres et l'heure",
				},
			},
			{
				Name: "Allemand",
				Topics: []string{
					"Se présenter et présenter quelqu'un",
					"Les verbes forts au présent",
					"Les animaux domestiques",
					"Les loisirs et le sport",
					"La nourriture (Petit-déjeuner)",
					"L'accusatif",
				},
			},
			{
				Name: "Italien",
				Topics: []string{
					"Salutations et présentation",
					"Le présent de l'indicatif",
					"Articles définis et indéfinis",
					"La famille",
					"La description physique",
					"Les nombres",
				},
			},
			{
				Name: "EMC",
				Topics: []string{
					"L’égalité et la lutte contre les discriminations",
					"La sécurité et les risques majeurs",
					"La solidarité (Associations)",
				},
			},
			{
				Name: "Arts Plastiques",
				Topics: []string{
					"L'image et la fiction",
					"La construction et la fabrication",
					"L'architecture et l'espace",
				},
			},
			{
				Name: "Éducation Musicale",
				Topics: []string{
					"Musique et images",
					"Le rôle de la musique dans la société",
					"Formes et structures musicales",
				},
			},
		},
	},
	{
		level: Quatrieme,
		subjects: []Subject{
			{
				Name: "Mathématiques",
				Topics: []string{
					"Nombres relatifs : multiplication et division",
					"Fractions : multiplication et division",
					"Puissances de 10 et notation scientifique",
					"Puissances d'un nombre relatif",
					"Calcul littéral : double distributivité",
					"Calcul littéral : factorisation simple",
					"Équations du premier degré",
					"Théorème de Pythagore (Calculs)",
					"Réciproque de Pythagore",
					"Translation et rotation",
					"Cône et pyramide : patrons et volumes",
					"Vitesse moyenne, distance, temps",
					"Probabilités : premières notions",
					"Cos, Sin, Tan (Introduction Triangle Rectangle)",
				},
			},
			{
				Name: "Français",
				Topics: []string{
					"Dire l’amour (Poésie lyrique, Cyrano)",
					"Individu et pouvoir : presse, médias, information",
					"La fiction pour interroger le réel (Maupassant, Balzac)",
					"Informer, s’informer, déformer (Fake news)",
					"La ville, lieu de tous les possibles ?",
					"Grammaire : La phrase complexe (Subordonnées)",
					"Conjugaison : Subjonctif présent",
					"Conjugaison : Voix active / Voix passive",
					"Figures de style (Comparaison, métaphore, hyperbole)",
					CustomTopicTrigger,
				},
			},
			{
				Name: "Histoire-Géographie",
				Topics: []string{
					"L’Europe des Lumières",
					"La Révolution française et l’Empire",
					"L’Europe et la Révolution industrielle",
					"Conquêtes et sociétés coloniales",
					"L’urbanisation du monde",
					"Les mobilités humaines transnationales",
					"Les espaces de faible densité (Tourisme, Agriculture)",
					"La mondialisation (Firme transnationale)",
				},
			},
			{
				Name: "Physique-Chimie",
				Topics: []string{
					"La constitution de la matière (Atomes/Molécules)",
					"Combustions et transformations chimiques",
					"Loi de conservation de la masse (Lavoisier)",
					"La tension électrique et la loi des mailles",
					"L'intensité électrique et la loi des nœuds",
					"La résistance et la Loi d'Ohm",
					"La vitesse de la lumière",
					"La propagation du son",
				},
			},
			{
				Name: "SVT",
				Topics: []string{
					"La reproduction sexuée des êtres vivants",
					"La reproduction humaine et la contraception",
					"Le système nerveux et la commande du mouvement",
					"Les perturbations du système nerveux",
					"La dynamique interne de la Terre (Séismes/Volcans)",
					"La tectonique des plaques",
				},
			},
			{
				Name: "Technologie",
				Topics: []string{
					"Les objets connectés (IoT)",
					"Algorithmique : Variables et listes",
					"Chaine d'information et chaine d'énergie",
					"Invention, innovation et découverte",
				},
			},
			{
				Name: "Anglais",
				Topics: []string{
					"Biographies (Ago, For, Since)",
					"Raconter au passé (Prétérit vs Be-ing)",
					"Anticipation et futur (Will/Be going to)",
					"Le monde du travail",
					"New York et les USA",
					"Le Harcèlement scolaire (Bullying)",
					"Detective stories",
				},
			},
			{
				Name: "Espagnol",
				Topics: []string{
					"La vie quotidienne (Horaires, Routine)",
					"Raconter ses vacances (Passé Composé)",
					"L'imparfait et la description passée",
					"L'obligation (Tener que / Hay que)",
					"La ville et les directions",
					"La nourriture et le restaurant",
				},
			},
			{
				Name: "Allemand",
				Topics: []string{
					"Le parfait (Passé composé)",
					"Les verbes de modalité",
					"La ville et l'orientation",
					"Les fêtes et traditions",
					"La mode et les vêtements",
				},
			},
			{
				Name: "Italien",
				Topics: []string{
					"La vie quotidienne",
					"Les prépositions articulées",
					"Le passé composé (Passato prossimo)",
					"La ville et les transports",
					"L'alimentation",
				},
			},
			{
				Name: "EMC",
				Topics: []string{
					"Les libertés individuelles et collectives",
					"La justice et le droit en France",
					"L’engagement citoyen",
				},
			},
			{
				Name: "Arts Plastiques",
				Topics: []string{
					"L'œuvre, l'espace, l'auteur, le spectateur",
					"La mise en scène",
					"L'art engagé",
				},
			},
			{
				Name: "Éducation Musicale",
				Topics: []string{
					"Musique et arts du spectacle",
					"Le métissage musical",
					"Musique et engagement",
				},
			},
		},
	},
	{
		level: Troisieme,
		subjects: []Subject{
			{
				Name: SubjectAnnalesBrevet,
				Topics: []string{
					"Sujet Métropole 2024 (Juin)",
					"Sujet Métropole 2023 (Juin)",
					"Sujet Amérique du Nord 2023 (Juin)",
					"Sujet Métropole 2022 (Juin)",
					"Sujet Centres Étrangers 2022 (Juin)",
					"Sujet Métropole 2021 (Juin)",
					"Sujet Métropole 2019 (Juin)",
				},
			},
			{
				Name:   SubjectBrevetBlanc,
				Topics: []string{"Épreuve Complète (Maths, Français, Histoire-Géo, Sciences)"},
			},
			{
				Name: "Mathématiques",
				Topics: []string{
					"Arithmétique : Diviseurs et nombres premiers",
					"Théorème de Thalès et réciproque",
					"Trigonométrie (Cos, Sin, Tan, Angles)",
					"Calcul littéral : Identités remarquables",
					"Équations produit-nul",
					"Inéquations",
					"Notion de fonction (Image, Antécédent)",
					"Fonctions linéaires et affines",
					"Homothéties",
					"Solides : Sections de plans",
					"Sphères et boules (Aire et Volume)",
					"Probabilités (Expérience à 2 épreuves)",
					"Statistiques (Médiane, Étendue)",
					"Algorithmique et Programmation",
				},
			},
			{
				Name: "Français",
				Topics: []string{
					"Se raconter, se représenter (Autobiographie)",
					"Dénoncer les travers de la société (Satire/Caricature)",
					"Visions poétiques du monde (Engagée/Lyrique)",
					"Agir dans la cité : individu et pouvoir (Antigone)",
					"Progrès et rêves scientifiques",
					"Révisions Brevet : Grammaire et Réécriture",
					"Grammaire : Valeurs des temps",
					"Grammaire : Analyse logique complète",
					"Vocabulaire : Mélioratif / Péjoratif",
					CustomTopicTrigger,
				},
			},
			{
				Name: "Histoire-Géographie",
				Topics: []string{
					"Civils et militaires dans la Première Guerre mondiale",
					"Démocraties et régimes totalitaires (Entre-deux-guerres)",
					"La Seconde Guerre mondiale (Génocide, Résistance)",
					"La France défaite et occupée (Vichy / De Gaulle)",
					"Le monde bipolaire (Guerre Froide)",
					"Indépendances et construction de nouveaux États",
					"La construction européenne",
					"La Vème République (De 1958 à nos jours)",
					"Les aires urbaines en France",
					"Les espaces productifs français",
					"Les espaces de faible densité",
					"La France et l’Union européenne",
				},
			},
			{
				Name: "Physique-Chimie",
				Topics: []string{
					"Les ions et le pH (Acide/Basique)",
					"Réaction entre acide et métal",
					"Structure de l’atome (Noyau/Électrons)",
					"Forces et interactions (Gravitation)",
					"Poids et masse",
					"Énergie cinétique et potentielle",
					"Énergie mécanique et sécurité routière",
					"Puissance et énergie électrique",
				},
			},
			{
				Name: "SVT",
				Topics: []string{
					"La génétique : Chromosomes et ADN",
					"Diversité et stabilité génétique des êtres vivants",
					"L’évolution des espèces et biodiversité",
					"Le système immunitaire (Défenses de l’organisme)",
					"Vaccination et antibiotiques",
					"Responsabilité humaine : Santé et environnement",
				},
			},
			{
				Name: "Technologie",
				Topics: []string{
					"Cycle de vie d'un produit",
					"Design et créativité",
					"Systèmes automatisés et embarqués",
					"Transmission de signal (Réseaux)",
					"Projet collectif (Mini-entreprise)",
				},
			},
			{
				Name: "Anglais",
				Topics: []string{
					"Environment and Ecology",
					"Dystopian Worlds (Black Mirror, 1984)",
					"Civil Rights Movement (USA)",
					"Australia and Aborigines",
					"Art and Street Art (Banksy)",
					"War and Remembrance",
					"Social Media and Fake News",
				},
			},
			{
				Name: "Espagnol",
				Topics: []string{
					"Voyages et découvertes (Amérique Latine)",
					"Mythes et légendes",
					"L’art engagé (Guernica, Frida Kahlo)",
					"La guerre civile espagnole",
					"L’environnement et l’écologie",
					"Projets d'avenir",
				},
			},
			{
				Name: "Allemand",
				Topics: []string{
					"Berlin, capitale historique",
					"La Seconde Guerre mondiale et le Mur",
					"L'écologie et l'environnement",
					"Les métiers et l'avenir",
					"L'Autriche et la Suisse",
				},
			},
			{
				Name: "Italien",
				Topics: []string{
					"Le système scolaire italien",
					"Le patrimoine culturel et artistique",
					"Le \"Made in Italy\" (Mode, Design)",
					"L'environnement",
					"L'imparfait et le futur",
				},
			},
			{
				Name: "EMC",
				Topics: []string{
					"La citoyenneté française et européenne",
					"La vie démocratique (Vote, Partis)",
					"La Défense et la paix",
				},
			},
			{
				Name: "Arts Plastiques",
				Topics: []string{
					"L'œuvre et le corps",
					"L'œuvre et l'architecture",
					"Le numérique dans l'art",
				},
			},
			{
				Name: "Éducation Musicale",
				Topics: []string{
					"Musique et mémoire",
					"L'interprétation et l'arrangement",
					"Création musicale numérique",
				},
			},
		},
	},
}
