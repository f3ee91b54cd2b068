package services

import "github.com/avasiliev/fittrack/internal/client/models"

// fallbackCatalog is the fixed exercise list served whenever the remote
// catalog is unreachable or returns nothing. Callers of the catalog service
// never see a failure; at worst they see these ten.
var fallbackCatalog = []models.Exercise{
	{
		ID:           "push-ups-1",
		Name:         "Push-ups",
		Type:         "strength",
		Muscle:       "chest",
		Equipment:    "body_only",
		Difficulty:   "beginner",
		Instructions: "Start in a plank position with your hands slightly wider than shoulder-width apart. Lower your body until your chest nearly touches the floor. Push yourself back up to the starting position.",
	},
	{
		ID:           "squats-2",
		Name:         "Squats",
		Type:         "strength",
		Muscle:       "quadriceps",
		Equipment:    "body_only",
		Difficulty:   "beginner",
		Instructions: "Stand with feet shoulder-width apart. Lower your body by bending your knees and hips. Keep your back straight and chest up. Return to starting position.",
	},
	{
		ID:           "plank-3",
		Name:         "Plank",
		Type:         "strength",
		Muscle:       "abdominals",
		Equipment:    "body_only",
		Difficulty:   "beginner",
		Instructions: "Start in a forearm plank position. Keep your body in a straight line from head to heels. Hold this position, engaging your core muscles.",
	},
	{
		ID:           "bicep-curls-4",
		Name:         "Bicep Curls",
		Type:         "strength",
		Muscle:       "biceps",
		Equipment:    "dumbbells",
		Difficulty:   "beginner",
		Instructions: "Stand with a dumbbell in each hand, arms fully extended. Curl the weights up to shoulder level. Lower back down with control.",
	},
	{
		ID:           "tricep-dips-5",
		Name:         "Tricep Dips",
		Type:         "strength",
		Muscle:       "triceps",
		Equipment:    "body_only",
		Difficulty:   "intermediate",
		Instructions: "Sit on the edge of a bench or chair. Place hands beside your hips. Slide off the edge and lower your body. Push back up using your triceps.",
	},
	{
		ID:           "lunges-6",
		Name:         "Lunges",
		Type:         "strength",
		Muscle:       "quadriceps",
		Equipment:    "body_only",
		Difficulty:   "beginner",
		Instructions: "Step forward with one leg. Lower your hips until both knees are bent at 90 degrees. Push back to starting position. Alternate legs.",
	},
	{
		ID:           "bench-press-7",
		Name:         "Bench Press",
		Type:         "strength",
		Muscle:       "chest",
		Equipment:    "barbell",
		Difficulty:   "intermediate",
		Instructions: "Lie on a bench with a barbell. Lower the bar to your chest. Press the bar back up to starting position.",
	},
	{
		ID:           "deadlift-8",
		Name:         "Deadlift",
		Type:         "strength",
		Muscle:       "quadriceps",
		Equipment:    "barbell",
		Difficulty:   "expert",
		Instructions: "Stand with feet hip-width apart, barbell over feet. Bend at hips and knees to grip bar. Lift bar by extending hips and knees. Lower with control.",
	},
	{
		ID:           "crunches-9",
		Name:         "Crunches",
		Type:         "strength",
		Muscle:       "abdominals",
		Equipment:    "body_only",
		Difficulty:   "beginner",
		Instructions: "Lie on your back with knees bent. Place hands behind head. Lift your shoulders off the ground. Lower back down with control.",
	},
	{
		ID:           "shoulder-press-10",
		Name:         "Shoulder Press",
		Type:         "strength",
		Muscle:       "shoulders",
		Equipment:    "dumbbells",
		Difficulty:   "intermediate",
		Instructions: "Stand or sit with dumbbells at shoulder height. Press weights overhead until arms are fully extended. Lower back to starting position.",
	},
}

// fallbackFiltered returns a copy of the fallback list, filtered by muscle
// when one is given.
func fallbackFiltered(muscle string) []models.Exercise {
	result := make([]models.Exercise, 0, len(fallbackCatalog))
	for _, ex := range fallbackCatalog {
		if muscle == "" || ex.Muscle == muscle {
			result = append(result, ex)
		}
	}
	return result
}
