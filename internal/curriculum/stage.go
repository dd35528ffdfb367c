package curriculum

// StageID identifies one of the ordered topic groupings.
type StageID string

const (
	StageTwoStep       StageID = "TWO_STEP"
	StageDistributive  StageID = "DISTRIBUTIVE"
	StageCombiningLike StageID = "COMBINING_LIKE"
	StageVariablesBoth StageID = "VARIABLES_BOTH"
)

// Stage is one entry of the stage catalog. Its ordinal position is its
// index in the catalog.
type Stage struct {
	ID          StageID `yaml:"id"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`

	// Mastery is the topic name listed on the completion screen.
	Mastery string `yaml:"mastery"`

	// Color is a hex colour used when rendering the stage.
	Color string `yaml:"color"`
}

// Question is one equation-solving exercise.
type Question struct {
	ID          string   `yaml:"id"`
	Stage       StageID  `yaml:"stage"`
	Prompt      string   `yaml:"prompt"`
	Equation    string   `yaml:"equation"`
	Answer      float64  `yaml:"answer"`
	Hint        string   `yaml:"hint,omitempty"`
	Steps       []string `yaml:"steps"`
	Placeholder string   `yaml:"placeholder,omitempty"`
}
