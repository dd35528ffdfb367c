package curriculum

// seedStages is the built-in stage catalog, in flight order.
var seedStages = []Stage{
	{
		ID:          StageTwoStep,
		Title:       "Stage 1: Two-Step Igniters",
		Description: "Isolate the variable using inverse operations.",
		Mastery:     "Two-Step Equations",
		Color:       "#60A5FA",
	},
	{
		ID:          StageDistributive,
		Title:       "Stage 2: Distributive De-couplers",
		Description: "Clear parentheses before solving.",
		Mastery:     "Distributive Property",
		Color:       "#FACC15",
	},
	{
		ID:          StageCombiningLike,
		Title:       "Stage 3: Like-Term Linkers",
		Description: "Simplify the equation on one side.",
		Mastery:     "Combining Like Terms",
		Color:       "#C084FC",
	},
	{
		ID:          StageVariablesBoth,
		Title:       "Stage 4: Variable Stabilizers",
		Description: "Get all variable terms on one side.",
		Mastery:     "Variables on Both Sides",
		Color:       "#F87171",
	},
}

// seedQuestions is the built-in question bank. Its order defines each
// stage's internal question order.
var seedQuestions = []Question{
	// Two-step equations
	{
		ID:       "1-1",
		Stage:    StageTwoStep,
		Prompt:   "Solve for x",
		Equation: "5x + 12 = 37",
		Answer:   5,
		Hint:     "Subtract 12 from both sides first.",
		Steps: []string{
			"Subtract 12 from both sides: 5x = 25",
			"Divide by 5: x = 5",
		},
	},
	{
		ID:       "1-2",
		Stage:    StageTwoStep,
		Prompt:   "Solve for m",
		Equation: "2m - 4 = 10",
		Answer:   7,
		Hint:     "Add 4 to both sides.",
		Steps: []string{
			"Add 4 to both sides: 2m = 14",
			"Divide by 2: m = 7",
		},
	},
	{
		ID:       "1-3",
		Stage:    StageTwoStep,
		Prompt:   "Solve for y",
		Equation: "y/2 + 3 = 8",
		Answer:   10,
		Hint:     "Subtract 3, then multiply by 2.",
		Steps: []string{
			"Subtract 3 from both sides: y/2 = 5",
			"Multiply by 2: y = 10",
		},
	},

	// Distributive property
	{
		ID:       "2-1",
		Stage:    StageDistributive,
		Prompt:   "Solve for n",
		Equation: "3(n - 5) = 24",
		Answer:   13,
		Hint:     "Distribute the 3 first: 3n - 15 = 24.",
		Steps: []string{
			"Distribute the 3: 3n - 15 = 24",
			"Add 15 to both sides: 3n = 39",
			"Divide by 3: n = 13",
		},
	},
	{
		ID:       "2-2",
		Stage:    StageDistributive,
		Prompt:   "Solve for x",
		Equation: "2(x + 4) = 20",
		Answer:   6,
		Hint:     "Divide by 2 first OR distribute the 2.",
		Steps: []string{
			"Divide both sides by 2: x + 4 = 10",
			"Subtract 4 from both sides: x = 6",
		},
	},
	{
		ID:       "2-3",
		Stage:    StageDistributive,
		Prompt:   "Solve for k",
		Equation: "5(k - 2) = 15",
		Answer:   5,
		Hint:     "5 times what equals 15?",
		Steps: []string{
			"Divide both sides by 5: k - 2 = 3",
			"Add 2 to both sides: k = 5",
		},
	},

	// Combining like terms
	{
		ID:       "3-1",
		Stage:    StageCombiningLike,
		Prompt:   "Solve for w",
		Equation: "7w - 2w + 4 = 29",
		Answer:   5,
		Hint:     "Combine 7w and -2w first.",
		Steps: []string{
			"Combine like terms (7w - 2w): 5w + 4 = 29",
			"Subtract 4 from both sides: 5w = 25",
			"Divide by 5: w = 5",
		},
	},
	{
		ID:       "3-2",
		Stage:    StageCombiningLike,
		Prompt:   "Solve for x",
		Equation: "3x + 2x - 5 = 20",
		Answer:   5,
		Hint:     "Add the x terms together.",
		Steps: []string{
			"Combine like terms (3x + 2x): 5x - 5 = 20",
			"Add 5 to both sides: 5x = 25",
			"Divide by 5: x = 5",
		},
	},
	{
		ID:       "3-3",
		Stage:    StageCombiningLike,
		Prompt:   "Solve for p",
		Equation: "4p + 3p = 21",
		Answer:   3,
		Hint:     "Combine like terms to get 7p = 21.",
		Steps: []string{
			"Combine like terms: 7p = 21",
			"Divide by 7: p = 3",
		},
	},

	// Variables on both sides
	{
		ID:       "4-1",
		Stage:    StageVariablesBoth,
		Prompt:   "Solve for y",
		Equation: "2y + 10 = 5y - 2",
		Answer:   4,
		Hint:     "Subtract 2y from both sides.",
		Steps: []string{
			"Subtract 2y from both sides: 10 = 3y - 2",
			"Add 2 to both sides: 12 = 3y",
			"Divide by 3: y = 4",
		},
	},
	{
		ID:       "4-2",
		Stage:    StageVariablesBoth,
		Prompt:   "Solve for x",
		Equation: "5x + 3 = 2x + 18",
		Answer:   5,
		Hint:     "Subtract 2x from both sides.",
		Steps: []string{
			"Subtract 2x from both sides: 3x + 3 = 18",
			"Subtract 3 from both sides: 3x = 15",
			"Divide by 3: x = 5",
		},
	},
	{
		ID:       "4-3",
		Stage:    StageVariablesBoth,
		Prompt:   "Find w (weeks)",
		Equation: "50 + 5.5w = 18.5 + 7.75w",
		Answer:   14,
		Hint:     "Subtract 5.5w from 7.75w.",
		Steps: []string{
			"Subtract 5.5w from both sides: 50 = 18.5 + 2.25w",
			"Subtract 18.5 from both sides: 31.5 = 2.25w",
			"Divide by 2.25: w = 14",
		},
	},
}
