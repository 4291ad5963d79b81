package content

import (
	"fmt"
	"strings"

	"github.com/jmercier/collegien/internal/curriculum"
)

const quickQuestionSystemPrompt = `Tu es un assistant pédagogique virtuel pour des collégiens français (11-15 ans).

Ta mission : Répondre à une question rapide sur un cours.

RÈGLES DE SÉCURITÉ ET DE PÉRIMÈTRE (TRÈS IMPORTANT) :
1. Tu ne réponds QU'AUX questions scolaires (Maths, Français, Histoire, Sciences, Langues, etc.).
2. Si la question porte sur : la politique, la religion, la sexualité, la violence, les jeux vidéo, les célébrités, ou des conseils personnels/médicaux -> TU REFUSES poliment en disant : "Je suis là uniquement pour t'aider dans tes devoirs et tes révisions scolaires."
3. Ton ton doit être encourageant, clair, et adapté à un collégien. Pas de jargon universitaire.
4. Sois concis (max 3-4 phrases) pour une réponse rapide.`

func buildQuickQuestionMessage(question string) string {
	return fmt.Sprintf("Question de l'élève : %q", question)
}

func buildSheetPrompt(level curriculum.Level, subject, topic string) string {
	var specific string
	switch subject {
	case "Mathématiques":
		specific = "IMPORTANT: Comme c'est des maths, génère une commande GeoGebra pertinente pour le champ 'geogebraCommand' (ex: pour les fonctions, donne la fonction; pour la géométrie, les coordonnées)."
	case "SVT":
		specific = "IMPORTANT: Comme c'est des SVT, si une notion quantitative ou évolutive est abordée (ex: courbe, histogramme), remplis le champ 'chartContent' avec des données précises (type 'line' ou 'bar') pour que je puisse tracer le graphique. Sinon laisse chartContent à null."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Génère une fiche de révision complète pour un élève de %s en %s sur le thème : %q.\n", level, subject, topic)
	if specific != "" {
		b.WriteString("\n" + specific + "\n")
	}
	b.WriteString(`
La fiche doit contenir :
1. Des objectifs clairs.
2. L'essentiel du cours en points clés.
3. Un contenu détaillé.
4. Des exemples concrets.
5. UN EXEMPLE TYPE CONTRÔLE avec une consigne et une "copie parfaite" structurée (introduction, développement avec arguments/citations, conclusion). La copie parfaite doit être EXCELLENTE.`)
	return b.String()
}

func buildExamSamplePrompt(level curriculum.Level, subject, topic string) string {
	return fmt.Sprintf(`Génère UNIQUEMENT un nouvel exemple d'exercice type contrôle (différent des précédents) pour %s en %s sur %q.
Il me faut : une consigne, une réponse rédigée parfaite, et des conseils.`, level, subject, topic)
}

func buildChartPrompt(level curriculum.Level, topic string) string {
	return fmt.Sprintf(`Génère UNIQUEMENT des données chiffrées pour un graphique SVT pertinent sur le thème %q (Niveau %s).
Exemple: Évolution d'une population, Rythme cardiaque, Taux d'O2...
Je veux titre, axes et data points.`, topic, level)
}

const copyExplanationSystemPrompt = `Agis comme un professeur correcteur expert.`

func buildCopyExplanationMessage(instruction, copy string) string {
	return fmt.Sprintf(`Consigne : %q
Copie de l'élève (modèle) : %q

Explique pourquoi cette copie est excellente. Analyse :
1. La structure (Introduction/Plan).
2. L'utilisation des connaissances (Citations, théorèmes, dates).
3. La méthode de rédaction.

Sois pédagogique, direct et encourageant.`, instruction, copy)
}

func buildReformulationPrompt(copy string, kind VariantKind) string {
	var instruction string
	switch kind {
	case VariantSimple:
		instruction = "Reformule cette copie pour un élève en difficulté : utilise des phrases plus courtes, un vocabulaire plus simple, et explique davantage les sous-entendus. Garde le même sens."
	case VariantExpert:
		instruction = "Reformule cette copie pour un niveau 'Excellence' (Lycée/Concours) : utilise un vocabulaire soutenu, des tournures complexes, et densifie l'argumentation ou la précision mathématique."
	}
	return fmt.Sprintf("%s\n\nTexte original : %q", instruction, copy)
}

func buildQuizPrompt(level curriculum.Level, subject, topic string, cfg QuizConfig) string {
	var difficultyText string
	switch cfg.Difficulty {
	case DifficultyIntro:
		difficultyText = "Niveau 'Première approche' : questions simples."
	case DifficultyRevision:
		difficultyText = "Niveau 'Révision' : difficulté moyenne."
	case DifficultyMastery:
		difficultyText = "Niveau 'Maîtrise complète' : questions complexes."
	}

	return fmt.Sprintf(`Génère un quiz de %d questions pour un élève de %s en %s sur le thème : %q.

Difficulté : %s

IMPORTANT :
- Mélange des questions de type "MCQ" (QCM) et "OPEN" (Réponse libre).
- Pour les questions "OPEN", l'élève devra saisir sa réponse. Ne fournis pas d'options, mais remplis bien 'correctAnswerText' pour que je puisse corriger.
- Pour les "MCQ", fournis 4 options.`, cfg.QuestionCount, level, subject, topic, difficultyText)
}

const brevetQuizPrompt = `Tu es un examinateur officiel du Brevet des Collèges.
Génère un QUIZ "Brevet Blanc" de 20 questions couvrant les 4 épreuves principales pour un élève de 3ème :
- 5 questions de Mathématiques (Algèbre, Géométrie, Proba).
- 5 questions de Français (Grammaire, Compréhension, Réécriture). PAS DE DICTÉE.
- 5 questions d'Histoire-Géographie-EMC.
- 5 questions de Sciences (SVT, Physique-Chimie, Techno).

Le niveau doit être celui de l'examen final.
Mélange questions QCM ("MCQ") et Réponses courtes ("OPEN").
Pour les questions OPEN, donne une réponse attendue précise.`

func buildAnnalesPrompt(yearTopic string) string {
	return fmt.Sprintf(`ROLE: Tu es une base de données d'archives du Diplôme National du Brevet (DNB).

MISSION: Restituer 5 exercices emblématiques issus du sujet : %q.

CONTRAINTES STRICTES :
1. Si tu possèdes le sujet EXACT de cette année-là dans tes données d'entraînement, utilise les vraies questions.
2. Si tu ne connais pas le sujet exact par cœur, génère des exercices "miroirs" fidèles.
3. EXCLUSION DICTÉE : Si le sujet original comportait une dictée, NE LA GÉNÈRE PAS. Remplace-la par une question de grammaire, de réécriture ou d'analyse d'image supplémentaire.

4. PAS DE QCM ! Utilisez uniquement le type "OPEN", sauf si une question QCM existait réellement.
5. Inclus tout le contexte nécessaire dans 'question'.

Format attendu: 5 questions complexes (mix Maths, Français, Hist-Géo, Sciences).`, yearTopic)
}

func buildGradingPrompt(question, studentAnswer, correctContext string, level curriculum.Level) string {
	return fmt.Sprintf(`Tu es un professeur de collège (%s). Tu dois corriger la réponse d'un élève.

Question : %q
Réponse attendue / Contexte : %q
Réponse de l'élève : %q

Tâche :
1. Détermine si la réponse est juste (accepte les fautes d'orthographe légères si le sens est bon).
2. Attribue 1 point (correct) ou 0 point (incorrect).
3. Rédige un feedback court et pédagogique s'adressant directement à l'élève (tutoiement).`, level, question, correctContext, studentAnswer)
}
