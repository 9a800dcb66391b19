package canvas

import (
	"fmt"

	"github.com/at-ishikawa/coursebuilder/internal/schedule"
)

// PlanAssignments lists the assignments one calendar needs on Canvas:
// homework in number order, then quizzes, then checkouts. Descriptions
// come from bodies keyed by assignment name, so a homework with a built
// page gets that page as its assignment text.
func PlanAssignments(weeks schedule.Weeks, lectureDays []string, bodies map[string]string) []AssignmentRequest {
	var requests []AssignmentRequest

	for _, number := range schedule.CollectHomeworkNumbers(weeks) {
		name := schedule.HomeworkKey(number)
		requests = append(requests, AssignmentRequest{
			Name:        name,
			Description: bodies[name],
			Kind:        AssignmentHomework,
			DueDate:     schedule.FindDueDateForHomework(weeks, number),
		})
	}

	for _, quiz := range schedule.CollectQuizzes(weeks, lectureDays) {
		name := fmt.Sprintf("Quiz %d", quiz.Number)
		requests = append(requests, AssignmentRequest{
			Name:        name,
			Description: bodies[name],
			Kind:        AssignmentQuiz,
			DueDate:     quiz.Date,
		})
	}

	for _, checkout := range schedule.CollectCheckouts(weeks) {
		name := fmt.Sprintf("Checkout%d", checkout.Number)
		requests = append(requests, AssignmentRequest{
			Name:        name,
			Description: bodies[name],
			Kind:        AssignmentCheckout,
			DueDate:     checkout.Date,
		})
	}

	return requests
}
