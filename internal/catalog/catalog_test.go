package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{0, Beginner},
		{55, Beginner},
		{60, Beginner},
		{61, Intermediate},
		{80, Intermediate},
		{81, Advanced},
		{100, Advanced},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForScore(tt.score), "score %d", tt.score)
	}
}

func TestParseCareerPath(t *testing.T) {
	c, err := ParseCareerPath("Data Scientist")
	require.NoError(t, err)
	assert.Equal(t, DataScientist, c)

	_, err = ParseCareerPath("Astronaut")
	assert.ErrorIs(t, err, ErrCareerNotFound)

	_, err = ParseCareerPath("data scientist")
	assert.ErrorIs(t, err, ErrCareerNotFound)
}

func TestCategoriesCoverAllCareers(t *testing.T) {
	seen := map[CareerPath]bool{}
	for _, cat := range Categories() {
		assert.Len(t, cat.Careers, 3, cat.Name)
		for _, c := range cat.Careers {
			assert.False(t, seen[c], "duplicate career %s", c)
			seen[c] = true
		}
	}
	assert.Len(t, seen, 12)
	assert.Equal(t, Careers()[0], SoftwareEngineer)
}

func TestQuestions(t *testing.T) {
	for _, c := range []CareerPath{SoftwareEngineer, CybersecurityAnalyst, DataScientist} {
		qs := Questions(c)
		require.Len(t, qs, 5, c)
		for _, q := range qs {
			assert.Contains(t, q.Options, q.CorrectAnswer, "%s question %d", c, q.ID)
		}
	}
	assert.Empty(t, Questions(Nurse))
}

func TestGetModule(t *testing.T) {
	m, err := GetModule(SoftwareEngineer, Beginner)
	require.NoError(t, err)
	assert.Equal(t, "Programming Fundamentals", m.Name)
	assert.Len(t, m.Videos, 5)
	assert.Equal(t, "se_b_1", m.Videos[0].ID)

	_, err = GetModule(SoftwareEngineer, Advanced)
	assert.ErrorIs(t, err, ErrModuleNotFound)

	_, err = GetModule(Nurse, Beginner)
	assert.ErrorIs(t, err, ErrModuleNotFound)
}

func TestGetModuleReturnsCopy(t *testing.T) {
	m, err := GetModule(SoftwareEngineer, Beginner)
	require.NoError(t, err)
	m.Videos[0].Title = "changed"
	m.Quizzes[0].Options[0] = "changed"

	again, err := GetModule(SoftwareEngineer, Beginner)
	require.NoError(t, err)
	assert.Equal(t, "Introduction to Programming", again.Videos[0].Title)
	assert.NotEqual(t, "changed", again.Quizzes[0].Options[0])
}

func TestEveryVideoHasOneQuiz(t *testing.T) {
	for career, levels := range learningModules {
		for level := range levels {
			m, err := GetModule(career, level)
			if err != nil {
				continue
			}
			assert.Len(t, m.Quizzes, len(m.Videos), "%s/%s", career, level)
			for _, v := range m.Videos {
				q, ok := m.QuizFor(v.ID)
				require.True(t, ok, "missing quiz for %s", v.ID)
				assert.Contains(t, q.Options, q.CorrectAnswer)
			}
		}
	}
}

func TestModuleOutline(t *testing.T) {
	name, ok := ModuleOutline(SoftwareEngineer, Advanced)
	assert.True(t, ok)
	assert.Equal(t, "System Design & Architecture", name)

	_, ok = ModuleOutline(Animator, Beginner)
	assert.False(t, ok)
}

func TestLookupVideo(t *testing.T) {
	ref, err := LookupVideo("ds_i_3")
	require.NoError(t, err)
	assert.Equal(t, DataScientist, ref.Career)
	assert.Equal(t, Intermediate, ref.Level)
	assert.Equal(t, 2, ref.Index)
	assert.Equal(t, 6, ref.Video.Duration)

	_, err = LookupVideo("nope")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestGetInsight(t *testing.T) {
	in, err := GetInsight(FinancialAnalyst)
	require.NoError(t, err)
	assert.Equal(t, "Medium", in.MarketDemand.Level)

	_, err = GetInsight(Doctor)
	assert.ErrorIs(t, err, ErrInsightNotFound)
}

func TestSubjects(t *testing.T) {
	names := SubjectNames()
	require.Len(t, names, 4)
	for _, n := range names {
		s, err := GetSubject(n)
		require.NoError(t, err)
		assert.Len(t, s.Preferences, 3)
		assert.Len(t, s.Strengths, 3)
		assert.Len(t, s.Careers, 3)
		for _, c := range s.Careers {
			assert.True(t, c.Valid())
		}
	}
	_, err := GetSubject("Astronomy")
	assert.ErrorIs(t, err, ErrSubjectNotFound)
}
