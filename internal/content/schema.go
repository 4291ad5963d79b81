package content

import "github.com/jmercier/collegien/internal/llm"

// chartProperties is shared between the sheet schema and the standalone
// chart schema.
var chartProperties = map[string]any{
	"title":      map[string]any{"type": "string"},
	"xAxisLabel": map[string]any{"type": "string"},
	"yAxisLabel": map[string]any{"type": "string"},
	"type": map[string]any{
		"type": "string",
		"enum": []any{"bar", "line"},
	},
	"data": map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"value": map[string]any{"type": "number"},
			},
			"required":             []any{"name", "value"},
			"additionalProperties": false,
		},
	},
}

// ChartSchema defines the JSON schema for standalone chart generation.
var ChartSchema = &llm.Schema{
	Name:        "chart",
	Description: "Données chiffrées pour un graphique de sciences",
	Definition: map[string]any{
		"type":                 "object",
		"properties":           chartProperties,
		"required":             []any{"title", "xAxisLabel", "yAxisLabel", "type", "data"},
		"additionalProperties": false,
	},
}

var examSampleProperties = map[string]any{
	"instruction": map[string]any{
		"type":        "string",
		"description": "Une consigne type d'examen (Brevet ou contrôle) ou d'exercice.",
	},
	"perfectCopy": map[string]any{
		"type":        "string",
		"description": "La 'copie parfaite' ou réponse idéale attendue, rédigée entièrement avec structure rigoureuse (Intro, Développement, Conclusion), citations et références.",
	},
	"tips": map[string]any{
		"type":        "string",
		"description": "Conseils de méthode pour réussir cet exercice spécifique.",
	},
}

// ExamSampleSchema defines the JSON schema for standalone exam sample
// regeneration.
var ExamSampleSchema = &llm.Schema{
	Name:        "exam-sample",
	Description: "Un exercice type contrôle avec sa copie parfaite",
	Definition: map[string]any{
		"type":                 "object",
		"properties":           examSampleProperties,
		"required":             []any{"instruction", "perfectCopy", "tips"},
		"additionalProperties": false,
	},
}

// SheetSchema defines the JSON schema for revision sheet generation.
var SheetSchema = &llm.Schema{
	Name:        "revision-sheet",
	Description: "Fiche de révision complète pour un chapitre de collège",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Titre du chapitre",
			},
			"objectives": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Liste des objectifs pédagogiques",
			},
			"keyPoints": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Points essentiels à retenir (résumé concis, bullet points)",
			},
			"detailedContent": map[string]any{
				"type":        "string",
				"description": "Un paragraphe explicatif très détaillé qui approfondit les notions clés.",
			},
			"examples": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Exemples concrets illustrant le cours",
			},
			"geogebraCommand": map[string]any{
				"type":        "string",
				"description": "UNIQUEMENT POUR LES MATHS: Une ou plusieurs commandes GeoGebra valides séparées par des points-virgules pour illustrer le concept (ex: 'f(x)=x^2; A=(1,1)'). Sinon laisser vide.",
				"nullable":    true,
			},
			"chartContent": map[string]any{
				"type":                 "object",
				"properties":           chartProperties,
				"required":             []any{"title", "xAxisLabel", "yAxisLabel", "type", "data"},
				"additionalProperties": false,
				"description":          "UNIQUEMENT POUR SVT si un graphique est pertinent. Sinon null.",
				"nullable":             true,
			},
			"examSample": map[string]any{
				"type":                 "object",
				"properties":           examSampleProperties,
				"required":             []any{"instruction", "perfectCopy", "tips"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"title", "objectives", "keyPoints", "detailedContent", "examples", "examSample"},
		"additionalProperties": false,
	},
}

// QuizSchema defines the JSON schema for quiz generation, shared by topic
// quizzes, the Brevet Blanc, and the annales.
var QuizSchema = &llm.Schema{
	Name:        "quiz",
	Description: "Quiz de révision avec questions QCM et réponses libres",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic":      map[string]any{"type": "string"},
			"difficulty": map[string]any{"type": "string"},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{"type": "integer"},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"MCQ", "OPEN"},
							"description": "Type de question: QCM ou réponse libre.",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "L'énoncé de la question.",
						},
						"textToRead": map[string]any{
							"type":        "string",
							"description": "Laisser vide (plus de dictée).",
							"nullable":    true,
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Liste de 4 choix de réponse (Uniquement si type='MCQ'). Laisser vide si OPEN.",
						},
						"correctAnswerIndex": map[string]any{
							"type":        "integer",
							"description": "Index (0-3) de la bonne réponse (Uniquement si type='MCQ').",
						},
						"correctAnswerText": map[string]any{
							"type":        "string",
							"description": "La réponse attendue détaillée (Uniquement si type='OPEN').",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Explication pédagogique de la réponse.",
						},
					},
					"required":             []any{"id", "type", "question", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"topic", "difficulty", "questions"},
		"additionalProperties": false,
	},
}

// GradingSchema defines the JSON schema for open-answer grading.
var GradingSchema = &llm.Schema{
	Name:        "grading",
	Description: "Correction d'une réponse libre d'élève",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isCorrect": map[string]any{
				"type":        "boolean",
				"description": "La réponse est-elle globalement correcte ?",
			},
			"score": map[string]any{
				"type":        "integer",
				"description": "1 si la réponse est acceptable, 0 sinon.",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Commentaire pédagogique adressé à l'élève. Explique l'erreur ou félicite.",
			},
		},
		"required":             []any{"isCorrect", "score", "feedback"},
		"additionalProperties": false,
	},
}
