package catalog

import "fmt"

// Subject 引导式对话中的兴趣领域
type Subject struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Preferences []string     `json:"preferences"`
	Strengths   []string     `json:"strengths"`
	Careers     []CareerPath `json:"careers"`
}

var subjects = []Subject{
	{
		Name:        "Technology & Engineering",
		Description: "This field involves creating innovative solutions using technology and engineering principles.",
		Preferences: []string{
			"Building and creating technology solutions",
			"Solving complex technical problems",
			"Working with cutting-edge technologies",
		},
		Strengths: []string{
			"Problem-solving and analytical thinking",
			"Technical skills and programming",
			"Innovation and creativity in technology",
		},
		Careers: []CareerPath{SoftwareEngineer, CybersecurityAnalyst, DataScientist},
	},
	{
		Name:        "Finance & Business",
		Description: "This field focuses on managing financial resources and business operations.",
		Preferences: []string{
			"Managing investments and financial analysis",
			"Developing business strategies",
			"Leading teams and projects",
		},
		Strengths: []string{
			"Financial analysis and planning",
			"Strategic thinking and decision making",
			"Leadership and communication",
		},
		Careers: []CareerPath{FinancialAnalyst, InvestmentBanker, BusinessConsultant},
	},
	{
		Name:        "Healthcare & Medicine",
		Description: "This field involves caring for people's health and well-being.",
		Preferences: []string{
			"Helping people with their health",
			"Working in medical environments",
			"Conducting medical research",
		},
		Strengths: []string{
			"Attention to detail and precision",
			"Empathy and patient care",
			"Medical knowledge and research",
		},
		Careers: []CareerPath{Doctor, MedicalLabTechnician, Nurse},
	},
	{
		Name:        "Creative Careers",
		Description: "This field involves expressing creativity through various mediums.",
		Preferences: []string{
			"Creating visual designs and artwork",
			"Developing user experiences",
			"Storytelling through animation",
		},
		Strengths: []string{
			"Visual design and creativity",
			"User experience design",
			"Animation and motion graphics",
		},
		Careers: []CareerPath{GraphicDesigner, UXUIDesigner, Animator},
	},
}

func SubjectNames() []string {
	names := make([]string, len(subjects))
	for i, s := range subjects {
		names[i] = s.Name
	}
	return names
}

func GetSubject(name string) (*Subject, error) {
	for _, s := range subjects {
		if s.Name == name {
			out := s
			out.Preferences = append([]string(nil), s.Preferences...)
			out.Strengths = append([]string(nil), s.Strengths...)
			out.Careers = append([]CareerPath(nil), s.Careers...)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrSubjectNotFound, name)
}
