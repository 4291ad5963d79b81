package content

// GenSettings are the per-call generation knobs for one operation.
type GenSettings struct {
	MaxTokens   int
	Temperature float64
}

// Config holds generation settings per operation. Temperatures differ on
// purpose: sheets stay factual, exam samples need variety so regeneration
// produces a genuinely different exercise, and annales run cold for
// fidelity to the archived papers.
type Config struct {
	Sheet         GenSettings
	ExamSample    GenSettings
	Chart         GenSettings
	Reformulation GenSettings
	Explanation   GenSettings
	Quiz          GenSettings
	Brevet        GenSettings
	Annales       GenSettings
	Grading       GenSettings
	QuickAnswer   GenSettings
}

// DefaultConfig returns the generation settings used in production.
func DefaultConfig() Config {
	return Config{
		Sheet:         GenSettings{MaxTokens: 8192, Temperature: 0.3},
		ExamSample:    GenSettings{MaxTokens: 4096, Temperature: 0.7},
		Chart:         GenSettings{MaxTokens: 1024, Temperature: 0.5},
		Reformulation: GenSettings{MaxTokens: 4096, Temperature: 0.5},
		Explanation:   GenSettings{MaxTokens: 2048, Temperature: 0.5},
		Quiz:          GenSettings{MaxTokens: 8192, Temperature: 0.5},
		Brevet:        GenSettings{MaxTokens: 8192, Temperature: 0.4},
		Annales:       GenSettings{MaxTokens: 8192, Temperature: 0.2},
		Grading:       GenSettings{MaxTokens: 1024, Temperature: 0.0},
		QuickAnswer:   GenSettings{MaxTokens: 1024, Temperature: 0.5},
	}
}
