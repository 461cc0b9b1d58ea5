package registry

import "github.com/meltforce/fitprogram/internal/catalog"

func ref(key string) BlueprintEntry {
	return BlueprintEntry{Key: key}
}

func prog(key string) BlueprintEntry {
	return BlueprintEntry{Key: key, Progressive: true}
}

func ptr[T any](v T) *T {
	return &v
}

// Default returns the built-in 30-day home program: one 7-day week that
// repeats for the standard weeks, followed by two bonus days.
func Default() *Registry {
	return &Registry{
		Week: []DayTemplate{
			{
				Day:             1,
				Title:           "Upper Body Strength",
				Description:     "Push and pull work for chest, back, shoulders and arms.",
				Focus:           "upper body",
				TargetDuration:  30,
				TargetIncrement: 3,
				Blueprint: []BlueprintEntry{
					ref("jumping-jacks"),
					ref("arm-circles"),
					prog("push-ups"),
					prog("dumbbell-rows"),
					prog("shoulder-press"),
					prog("tricep-dips"),
					ref("bicep-curls"),
					prog("plank"),
					ref("chest-opener"),
					ref("deep-breathing"),
				},
			},
			{
				Day:             2,
				Title:           "Lower Body Power",
				Description:     "Squat, lunge and hinge patterns to build leg and glute strength.",
				Focus:           "lower body",
				TargetDuration:  30,
				TargetIncrement: 3,
				Blueprint: []BlueprintEntry{
					ref("march-in-place"),
					ref("hip-circles"),
					prog("squats"),
					prog("lunges"),
					prog("glute-bridges"),
					prog("romanian-deadlifts"),
					prog("calf-raises"),
					prog("wall-sit"),
					ref("quad-stretch"),
					ref("hamstring-stretch"),
				},
			},
			{
				Day:             3,
				Title:           "Core & Cardio",
				Description:     "Trunk stability with short cardio bursts.",
				Focus:           "core",
				TargetDuration:  25,
				TargetIncrement: 2,
				Blueprint: []BlueprintEntry{
					ref("jumping-jacks"),
					prog("high-knees"),
					prog("plank"),
					prog("bicycle-crunches"),
					prog("dead-bug"),
					prog("mountain-climbers"),
					prog("russian-twists"),
					ref("superman"),
					ref("childs-pose"),
				},
			},
			{
				Day:             4,
				Title:           "HIIT Conditioning",
				Description:     "Work hard for the interval, rest fully between rounds.",
				Focus:           "cardio",
				TargetDuration:  25,
				TargetIncrement: 3,
				Blueprint: []BlueprintEntry{
					ref("march-in-place"),
					ref("arm-circles"),
					prog("burpees"),
					prog("squat-jumps"),
					prog("mountain-climbers"),
					prog("skater-hops"),
					prog("high-knees"),
					{
						Key:         "shadow-boxing",
						Progressive: true,
						Overrides: &Overrides{
							Name:       ptr("Shadow Boxing Finisher"),
							Difficulty: ptr(catalog.DifficultyHard),
						},
					},
					ref("deep-breathing"),
				},
			},
			{
				Day:             5,
				Title:           "Mobility & Steady Cardio",
				Description:     "Low-intensity movement to build the aerobic base and open the hips.",
				Focus:           "mobility",
				TargetDuration:  35,
				TargetIncrement: 2,
				Blueprint: []BlueprintEntry{
					ref("cat-cow"),
					prog("brisk-walk"),
					ref("hip-flexor-stretch"),
					{
						Inline: &catalog.ExerciseDefinition{
							Name:          "World's Greatest Stretch",
							Category:      "mobility",
							Description:   "Lunge, drop the inside elbow, then rotate the arm to the ceiling.",
							Difficulty:    catalog.DifficultyEasy,
							Duration:      4,
							Reps:          "2 rounds of 5 reps each side",
							TargetMuscles: []string{"hips", "thoracic spine", "hamstrings"},
						},
						Progressive: true,
					},
					ref("yoga-flow"),
					ref("foam-rolling"),
				},
			},
			{
				Day:             6,
				Title:           "Full Body Strength",
				Description:     "Compound movements across every major muscle group.",
				Focus:           "full body",
				TargetDuration:  35,
				TargetIncrement: 3,
				Blueprint: []BlueprintEntry{
					ref("jumping-jacks"),
					ref("hip-circles"),
					prog("goblet-squats"),
					{
						Key:         "push-ups",
						Progressive: true,
						Overrides: &Overrides{
							Name:         ptr("Tempo Push-Ups"),
							Description:  ptr("Three seconds down, one second up."),
							Prescription: catalog.Sets(3, 8, catalog.UnitReps),
							Alternatives: []catalog.ExerciseDefinition{
								{Name: "Tempo Knee Push-Ups", Category: "strength", Difficulty: catalog.DifficultyEasy, Duration: 5, Prescription: catalog.Sets(3, 8, catalog.UnitReps), TargetMuscles: []string{"chest", "triceps"}},
							},
						},
					},
					prog("dumbbell-rows"),
					prog("step-ups"),
					prog("side-plank"),
					prog("leg-raises"),
					ref("band-pull-aparts"),
					ref("hamstring-stretch"),
					ref("childs-pose"),
				},
			},
			{
				Day:             7,
				Title:           "Active Recovery",
				Description:     "An easy day. Move gently and let the week's work settle in.",
				Focus:           "recovery",
				TargetDuration:  20,
				TargetIncrement: 2,
				Rest:            true,
				Blueprint: []BlueprintEntry{
					{
						Key: "brisk-walk",
						Overrides: &Overrides{
							Name:         ptr("Easy Walk"),
							Difficulty:   ptr(catalog.DifficultyEasy),
							Prescription: catalog.Block(10, catalog.UnitMinutes),
						},
					},
					ref("yoga-flow"),
					ref("deep-breathing"),
					ref("foam-rolling"),
				},
			},
		},
		Bonus: []BonusTemplate{
			{
				Week: 5,
				DayTemplate: DayTemplate{
					Day:            1,
					Title:          "Fitness Check-In",
					Description:    "Repeat the week one tests and compare your numbers.",
					Focus:          "assessment",
					TargetDuration: 30,
					Blueprint: []BlueprintEntry{
						ref("jumping-jacks"),
						ref("arm-circles"),
						{
							Key: "push-ups",
							Overrides: &Overrides{
								Name:     ptr("Push-Up Test"),
								Reps:     ptr("As many reps as possible in 60 seconds"),
								Duration: ptr(2.0),
							},
						},
						{
							Key: "squats",
							Overrides: &Overrides{
								Name:     ptr("Squat Test"),
								Reps:     ptr("As many reps as possible in 60 seconds"),
								Duration: ptr(2.0),
							},
						},
						{
							Key: "plank",
							Overrides: &Overrides{
								Name:         ptr("Plank Hold Test"),
								Reps:         ptr("Hold for as long as good form allows"),
								Duration:     ptr(3.0),
								Alternatives: []catalog.ExerciseDefinition{},
							},
						},
						prog("brisk-walk"),
						ref("hamstring-stretch"),
						ref("deep-breathing"),
					},
				},
			},
			{
				Week: 5,
				DayTemplate: DayTemplate{
					Day:            2,
					Title:          "Celebration Flow",
					Description:    "A full-body finale using the hardest versions of your favourite moves.",
					Focus:          "full body",
					TargetDuration: 40,
					Blueprint: []BlueprintEntry{
						ref("jumping-jacks"),
						ref("hip-circles"),
						prog("burpees"),
						prog("goblet-squats"),
						prog("push-ups"),
						prog("mountain-climbers"),
						prog("plank"),
						ref("yoga-flow"),
						ref("deep-breathing"),
					},
				},
			},
		},
	}
}
