package catalog

var (
	noEquipment = []string{}
	mat         = []string{"mat"}
	dumbbells   = []string{"dumbbells"}
	band        = []string{"resistance band"}
	chair       = []string{"sturdy chair"}
)

// Default returns the built-in catalog of the home program.
func Default() *Catalog {
	return MustNew(defaultDefinitions()...)
}

func defaultDefinitions() []ExerciseDefinition {
	return []ExerciseDefinition{
		// Warmups
		{
			Key:           "jumping-jacks",
			Name:          "Jumping Jacks",
			Category:      "warmup",
			Description:   "Light jumping jacks to raise heart rate and loosen the shoulders.",
			Difficulty:    DifficultyEasy,
			Duration:      3,
			Prescription:  Block(3, UnitMinutes),
			TargetMuscles: []string{"full body"},
			Equipment:     noEquipment,
			Warmup:        true,
			Alternatives: []ExerciseDefinition{
				{Name: "Step Jacks", Category: "warmup", Difficulty: DifficultyEasy, Duration: 3, Prescription: Block(3, UnitMinutes), TargetMuscles: []string{"full body"}, Warmup: true},
			},
		},
		{
			Key:           "arm-circles",
			Name:          "Arm Circles",
			Category:      "warmup",
			Description:   "Small to large circles forward then backward.",
			Difficulty:    DifficultyEasy,
			Duration:      2,
			Prescription:  Sets(2, 30, UnitSeconds),
			TargetMuscles: []string{"shoulders"},
			Warmup:        true,
		},
		{
			Key:           "march-in-place",
			Name:          "March in Place",
			Category:      "warmup",
			Description:   "Brisk march with high knees and active arms.",
			Difficulty:    DifficultyEasy,
			Duration:      3,
			Prescription:  Block(3, UnitMinutes),
			TargetMuscles: []string{"legs", "cardio"},
			Warmup:        true,
		},
		{
			Key:           "hip-circles",
			Name:          "Hip Circles",
			Category:      "warmup",
			Difficulty:    DifficultyEasy,
			Duration:      2,
			Prescription:  Sets(2, 10, UnitRepsEachSide),
			TargetMuscles: []string{"hips"},
			Warmup:        true,
		},
		{
			Key:           "cat-cow",
			Name:          "Cat-Cow",
			Category:      "warmup",
			Description:   "Alternate arching and rounding the spine on all fours.",
			Difficulty:    DifficultyEasy,
			Duration:      2,
			Prescription:  Block(12, UnitReps),
			TargetMuscles: []string{"back", "core"},
			Equipment:     mat,
			Warmup:        true,
		},

		// Upper body
		{
			Key:           "push-ups",
			Name:          "Push-Ups",
			Category:      "strength",
			Description:   "Hands under shoulders, body in a straight line, chest to just above the floor.",
			Difficulty:    DifficultyMedium,
			Duration:      5,
			Prescription:  Sets(3, 10, UnitReps),
			TargetMuscles: []string{"chest", "triceps", "shoulders"},
			VideoURL:      "https://videos.fitprogram.app/push-ups.mp4",
			GIFURL:        "https://media.fitprogram.app/push-ups.gif",
			Alternatives: []ExerciseDefinition{
				{Name: "Knee Push-Ups", Category: "strength", Difficulty: DifficultyEasy, Duration: 5, Prescription: Sets(3, 10, UnitReps), TargetMuscles: []string{"chest", "triceps"}},
				{Name: "Incline Push-Ups", Category: "strength", Difficulty: DifficultyEasy, Duration: 5, Prescription: Sets(3, 12, UnitReps), TargetMuscles: []string{"chest", "triceps"}, RequiresEquipment: true, Equipment: chair},
			},
		},
		{
			Key:               "dumbbell-rows",
			Name:              "Dumbbell Rows",
			Category:          "strength",
			Description:       "Hinge at the hips and pull the dumbbells toward the lower ribs.",
			Difficulty:        DifficultyMedium,
			Duration:          6,
			Prescription:      Sets(3, 12, UnitReps),
			TargetMuscles:     []string{"back", "biceps"},
			RequiresEquipment: true,
			Equipment:         dumbbells,
			Alternatives: []ExerciseDefinition{
				{Name: "Band Rows", Category: "strength", Difficulty: DifficultyEasy, Duration: 6, Prescription: Sets(3, 15, UnitReps), TargetMuscles: []string{"back"}, RequiresEquipment: true, Equipment: band},
			},
		},
		{
			Key:               "shoulder-press",
			Name:              "Dumbbell Shoulder Press",
			Category:          "strength",
			Difficulty:        DifficultyMedium,
			Duration:          5,
			Prescription:      Sets(3, 10, UnitReps),
			TargetMuscles:     []string{"shoulders", "triceps"},
			RequiresEquipment: true,
			Equipment:         dumbbells,
			Alternatives: []ExerciseDefinition{
				{Name: "Pike Push-Ups", Category: "strength", Difficulty: DifficultyMedium, Duration: 5, Prescription: Sets(3, 8, UnitReps), TargetMuscles: []string{"shoulders"}},
			},
		},
		{
			Key:               "tricep-dips",
			Name:              "Chair Tricep Dips",
			Category:          "strength",
			Description:       "Hands on the chair edge, lower until elbows reach ninety degrees.",
			Difficulty:        DifficultyMedium,
			Duration:          4,
			Prescription:      Sets(3, 10, UnitReps),
			TargetMuscles:     []string{"triceps"},
			RequiresEquipment: true,
			Equipment:         chair,
		},
		{
			Key:               "bicep-curls",
			Name:              "Bicep Curls",
			Category:          "strength",
			Difficulty:        DifficultyEasy,
			Duration:          4,
			Prescription:      Sets(3, 12, UnitReps),
			TargetMuscles:     []string{"biceps"},
			RequiresEquipment: true,
			Equipment:         dumbbells,
			Alternatives: []ExerciseDefinition{
				{Name: "Band Curls", Category: "strength", Difficulty: DifficultyEasy, Duration: 4, Prescription: Sets(3, 15, UnitReps), TargetMuscles: []string{"biceps"}, RequiresEquipment: true, Equipment: band},
			},
		},
		{
			Key:               "band-pull-aparts",
			Name:              "Band Pull-Aparts",
			Category:          "strength",
			Difficulty:        DifficultyEasy,
			Duration:          3,
			Prescription:      Sets(2, 15, UnitReps),
			TargetMuscles:     []string{"upper back", "shoulders"},
			RequiresEquipment: true,
			Equipment:         band,
		},

		// Lower body
		{
			Key:           "squats",
			Name:          "Bodyweight Squats",
			Category:      "strength",
			Description:   "Feet shoulder-width, sit back until thighs are parallel to the floor.",
			Difficulty:    DifficultyEasy,
			Duration:      5,
			Prescription:  Sets(3, 15, UnitReps),
			TargetMuscles: []string{"quads", "glutes"},
			VideoURL:      "https://videos.fitprogram.app/squats.mp4",
			Alternatives: []ExerciseDefinition{
				{Name: "Chair Squats", Category: "strength", Difficulty: DifficultyEasy, Duration: 5, Prescription: Sets(3, 12, UnitReps), TargetMuscles: []string{"quads", "glutes"}, RequiresEquipment: true, Equipment: chair},
			},
		},
		{
			Key:           "lunges",
			Name:          "Reverse Lunges",
			Category:      "strength",
			Difficulty:    DifficultyMedium,
			Duration:      6,
			Prescription:  Sets(3, 10, UnitRepsEachSide),
			TargetMuscles: []string{"quads", "glutes", "hamstrings"},
			Alternatives: []ExerciseDefinition{
				{Name: "Split Squats", Category: "strength", Difficulty: DifficultyMedium, Duration: 6, Prescription: Sets(3, 8, UnitRepsEachSide), TargetMuscles: []string{"quads", "glutes"}},
			},
		},
		{
			Key:           "glute-bridges",
			Name:          "Glute Bridges",
			Category:      "strength",
			Difficulty:    DifficultyEasy,
			Duration:      4,
			Prescription:  Sets(3, 15, UnitReps),
			TargetMuscles: []string{"glutes", "hamstrings"},
			Equipment:     mat,
			Alternatives: []ExerciseDefinition{
				{Name: "Single-Leg Glute Bridges", Category: "strength", Difficulty: DifficultyMedium, Duration: 4, Prescription: Sets(3, 8, UnitRepsEachSide), TargetMuscles: []string{"glutes"}},
			},
		},
		{
			Key:               "goblet-squats",
			Name:              "Goblet Squats",
			Category:          "strength",
			Difficulty:        DifficultyMedium,
			Duration:          5,
			Prescription:      Sets(3, 12, UnitReps),
			TargetMuscles:     []string{"quads", "glutes", "core"},
			RequiresEquipment: true,
			Equipment:         dumbbells,
		},
		{
			Key:               "romanian-deadlifts",
			Name:              "Dumbbell Romanian Deadlifts",
			Category:          "strength",
			Description:       "Soft knees, hinge until the dumbbells pass the knees, squeeze glutes to stand.",
			Difficulty:        DifficultyMedium,
			Duration:          6,
			Prescription:      Sets(3, 10, UnitReps),
			TargetMuscles:     []string{"hamstrings", "glutes", "lower back"},
			RequiresEquipment: true,
			Equipment:         dumbbells,
			Alternatives: []ExerciseDefinition{
				{Name: "Good Mornings", Category: "strength", Difficulty: DifficultyEasy, Duration: 6, Prescription: Sets(3, 12, UnitReps), TargetMuscles: []string{"hamstrings"}},
			},
		},
		{
			Key:           "calf-raises",
			Name:          "Calf Raises",
			Category:      "strength",
			Difficulty:    DifficultyEasy,
			Duration:      3,
			Prescription:  Sets(3, 20, UnitReps),
			TargetMuscles: []string{"calves"},
		},
		{
			Key:           "wall-sit",
			Name:          "Wall Sit",
			Category:      "strength",
			Difficulty:    DifficultyMedium,
			Duration:      3,
			Prescription:  Sets(3, 30, UnitSeconds),
			TargetMuscles: []string{"quads"},
		},
		{
			Key:               "step-ups",
			Name:              "Step-Ups",
			Category:          "strength",
			Difficulty:        DifficultyMedium,
			Duration:          5,
			Prescription:      Sets(3, 10, UnitRepsEachSide),
			TargetMuscles:     []string{"quads", "glutes"},
			RequiresEquipment: true,
			Equipment:         chair,
		},

		// Core
		{
			Key:           "plank",
			Name:          "Plank",
			Category:      "core",
			Description:   "Forearms under shoulders, hold a straight line from head to heels.",
			Difficulty:    DifficultyMedium,
			Duration:      3,
			Prescription:  Sets(3, 30, UnitSeconds),
			TargetMuscles: []string{"core", "shoulders"},
			Equipment:     mat,
			GIFURL:        "https://media.fitprogram.app/plank.gif",
			Alternatives: []ExerciseDefinition{
				{Name: "Knee Plank", Category: "core", Difficulty: DifficultyEasy, Duration: 3, Prescription: Sets(3, 30, UnitSeconds), TargetMuscles: []string{"core"}},
			},
		},
		{
			Key:           "side-plank",
			Name:          "Side Plank",
			Category:      "core",
			Difficulty:    DifficultyMedium,
			Duration:      3,
			Prescription:  Sets(2, 20, UnitSeconds),
			TargetMuscles: []string{"obliques"},
			Equipment:     mat,
		},
		{
			Key:           "bicycle-crunches",
			Name:          "Bicycle Crunches",
			Category:      "core",
			Difficulty:    DifficultyMedium,
			Duration:      4,
			Prescription:  Sets(3, 16, UnitReps),
			TargetMuscles: []string{"abs", "obliques"},
			Equipment:     mat,
		},
		{
			Key:           "dead-bug",
			Name:          "Dead Bug",
			Category:      "core",
			Difficulty:    DifficultyEasy,
			Duration:      3,
			Prescription:  Sets(3, 10, UnitRepsEachSide),
			TargetMuscles: []string{"abs"},
			Equipment:     mat,
		},
		{
			Key:           "leg-raises",
			Name:          "Lying Leg Raises",
			Category:      "core",
			Difficulty:    DifficultyMedium,
			Duration:      3,
			Prescription:  Sets(3, 12, UnitReps),
			TargetMuscles: []string{"lower abs"},
			Equipment:     mat,
			Alternatives: []ExerciseDefinition{
				{Name: "Bent-Knee Leg Raises", Category: "core", Difficulty: DifficultyEasy, Duration: 3, Prescription: Sets(3, 12, UnitReps), TargetMuscles: []string{"lower abs"}},
			},
		},
		{
			Key:           "superman",
			Name:          "Superman Hold",
			Category:      "core",
			Difficulty:    DifficultyEasy,
			Duration:      3,
			Prescription:  Sets(3, 20, UnitSeconds),
			TargetMuscles: []string{"lower back", "glutes"},
			Equipment:     mat,
		},
		{
			Key:           "russian-twists",
			Name:          "Russian Twists",
			Category:      "core",
			Difficulty:    DifficultyMedium,
			Duration:      3,
			Prescription:  Sets(3, 20, UnitReps),
			TargetMuscles: []string{"obliques"},
			Equipment:     mat,
		},

		// Cardio and conditioning
		{
			Key:           "mountain-climbers",
			Name:          "Mountain Climbers",
			Category:      "cardio",
			Difficulty:    DifficultyHard,
			Duration:      4,
			Prescription:  Sets(4, 30, UnitSeconds),
			TargetMuscles: []string{"core", "shoulders", "cardio"},
			Alternatives: []ExerciseDefinition{
				{Name: "Slow Mountain Climbers", Category: "cardio", Difficulty: DifficultyMedium, Duration: 4, Prescription: Sets(4, 30, UnitSeconds), TargetMuscles: []string{"core"}},
			},
		},
		{
			Key:           "burpees",
			Name:          "Burpees",
			Category:      "cardio",
			Description:   "Squat, kick back to plank, return and jump.",
			Difficulty:    DifficultyHard,
			Duration:      5,
			Prescription:  Sets(3, 8, UnitReps),
			TargetMuscles: []string{"full body", "cardio"},
			VideoURL:      "https://videos.fitprogram.app/burpees.mp4",
			Alternatives: []ExerciseDefinition{
				{Name: "Step-Back Burpees", Category: "cardio", Difficulty: DifficultyMedium, Duration: 5, Prescription: Sets(3, 8, UnitReps), TargetMuscles: []string{"full body"}},
			},
		},
		{
			Key:           "high-knees",
			Name:          "High Knees",
			Category:      "cardio",
			Difficulty:    DifficultyMedium,
			Duration:      3,
			Prescription:  Sets(3, 30, UnitSeconds),
			TargetMuscles: []string{"legs", "cardio"},
		},
		{
			Key:           "squat-jumps",
			Name:          "Squat Jumps",
			Category:      "cardio",
			Difficulty:    DifficultyHard,
			Duration:      4,
			Prescription:  Sets(3, 10, UnitReps),
			TargetMuscles: []string{"quads", "glutes", "cardio"},
			Alternatives: []ExerciseDefinition{
				{Name: "Squat to Calf Raise", Category: "strength", Difficulty: DifficultyEasy, Duration: 4, Prescription: Sets(3, 12, UnitReps), TargetMuscles: []string{"quads", "calves"}},
			},
		},
		{
			Key:           "skater-hops",
			Name:          "Skater Hops",
			Category:      "cardio",
			Difficulty:    DifficultyMedium,
			Duration:      3,
			Prescription:  Sets(3, 12, UnitRepsEachSide),
			TargetMuscles: []string{"legs", "glutes", "cardio"},
		},
		{
			Key:           "brisk-walk",
			Name:          "Brisk Walk",
			Category:      "cardio",
			Description:   "Steady walk at a pace where talking is possible but singing is not.",
			Difficulty:    DifficultyEasy,
			Prescription:  Block(20, UnitMinutes),
			TargetMuscles: []string{"legs", "cardio"},
		},
		{
			Key:           "shadow-boxing",
			Name:          "Shadow Boxing",
			Category:      "cardio",
			Difficulty:    DifficultyMedium,
			Duration:      5,
			Prescription:  Sets(5, 45, UnitSeconds),
			TargetMuscles: []string{"shoulders", "core", "cardio"},
		},

		// Mobility and cooldown
		{
			Key:           "childs-pose",
			Name:          "Child's Pose",
			Category:      "cooldown",
			Difficulty:    DifficultyEasy,
			Duration:      2,
			Prescription:  Block(60, UnitSeconds),
			TargetMuscles: []string{"back", "hips"},
			Equipment:     mat,
			Cooldown:      true,
		},
		{
			Key:           "hamstring-stretch",
			Name:          "Seated Hamstring Stretch",
			Category:      "cooldown",
			Difficulty:    DifficultyEasy,
			Duration:      2,
			Prescription:  Sets(2, 30, UnitSeconds),
			TargetMuscles: []string{"hamstrings"},
			Equipment:     mat,
			Cooldown:      true,
		},
		{
			Key:           "chest-opener",
			Name:          "Doorway Chest Opener",
			Category:      "cooldown",
			Difficulty:    DifficultyEasy,
			Duration:      2,
			Prescription:  Sets(2, 30, UnitSeconds),
			TargetMuscles: []string{"chest", "shoulders"},
			Cooldown:      true,
		},
		{
			Key:           "quad-stretch",
			Name:          "Standing Quad Stretch",
			Category:      "cooldown",
			Difficulty:    DifficultyEasy,
			Duration:      2,
			Prescription:  Sets(2, 30, UnitSeconds),
			TargetMuscles: []string{"quads"},
			Cooldown:      true,
		},
		{
			Key:           "deep-breathing",
			Name:          "Deep Breathing",
			Category:      "cooldown",
			Description:   "Four seconds in, hold for four, six seconds out.",
			Difficulty:    DifficultyEasy,
			Prescription:  Block(3, UnitMinutes),
			TargetMuscles: []string{},
			Cooldown:      true,
		},
		{
			Key:           "yoga-flow",
			Name:          "Gentle Yoga Flow",
			Category:      "mobility",
			Difficulty:    DifficultyEasy,
			Prescription:  Block(15, UnitMinutes),
			TargetMuscles: []string{"full body"},
			Equipment:     mat,
		},
		{
			Key:               "foam-rolling",
			Name:              "Foam Rolling",
			Category:          "mobility",
			Difficulty:        DifficultyEasy,
			Duration:          8,
			Reps:              "1 minute per muscle group",
			TargetMuscles:     []string{"full body"},
			RequiresEquipment: true,
			Equipment:         []string{"foam roller"},
			Optional:          true,
			Alternatives: []ExerciseDefinition{
				{Name: "Tennis Ball Release", Category: "mobility", Difficulty: DifficultyEasy, Duration: 8, Reps: "1 minute per area", RequiresEquipment: true, Equipment: []string{"tennis ball"}, Optional: true},
			},
		},
		{
			Key:           "hip-flexor-stretch",
			Name:          "Kneeling Hip Flexor Stretch",
			Category:      "mobility",
			Difficulty:    DifficultyEasy,
			Duration:      3,
			Prescription:  Sets(2, 30, UnitSeconds),
			TargetMuscles: []string{"hip flexors"},
			Equipment:     mat,
		},
	}
}
