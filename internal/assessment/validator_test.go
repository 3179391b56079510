package assessment

import "testing"

func TestDefaultValidators_AcceptValidQuiz(t *testing.T) {
	qs := sampleQuestions(QuizSize)
	for _, v := range DefaultConfig().Validators {
		if err := v.Validate(qs); err != nil {
			t.Errorf("%s rejected a valid quiz: %v", v.Name(), err)
		}
	}
}

func TestStructuralValidator_ReportsQuestionNumber(t *testing.T) {
	qs := sampleQuestions(QuizSize)
	qs[6].Options[1] = ""

	err := (&StructuralValidator{}).Validate(qs)
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Message != "question 7: option 1 is empty" {
		t.Errorf("message = %q", err.Message)
	}
}

func TestQuizLookup(t *testing.T) {
	quiz := &Quiz{Sector: "Cloud Computing", Questions: sampleQuestions(QuizSize)}
	q, ok := quiz.Question(4)
	if !ok || q.ID != 4 {
		t.Errorf("Question(4) = %+v, %v", q, ok)
	}
	if _, ok := quiz.Question(11); ok {
		t.Error("Question(11) should not exist")
	}
}

func TestAnswerSetClone(t *testing.T) {
	a := AnswerSet{1: 2}
	b := a.Clone()
	b[1] = 3
	b[2] = 0
	if a[1] != 2 || len(a) != 1 {
		t.Errorf("clone aliases the original: %v", a)
	}
}
