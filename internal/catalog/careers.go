package catalog

import "fmt"

// CareerPath 职业路径（固定枚举）
type CareerPath string

const (
	SoftwareEngineer     CareerPath = "Software Engineer"
	CybersecurityAnalyst CareerPath = "Cybersecurity Analyst"
	DataScientist        CareerPath = "Data Scientist"
	FinancialAnalyst     CareerPath = "Financial Analyst"
	InvestmentBanker     CareerPath = "Investment Banker"
	BusinessConsultant   CareerPath = "Business Consultant"
	Doctor               CareerPath = "Doctor"
	MedicalLabTechnician CareerPath = "Medical Lab Technician"
	Nurse                CareerPath = "Nurse"
	GraphicDesigner      CareerPath = "Graphic Designer"
	UXUIDesigner         CareerPath = "UX/UI Designer"
	Animator             CareerPath = "Animator"
)

// Category 职业分类
type Category struct {
	Name    string       `json:"name"`
	Careers []CareerPath `json:"careers"`
}

var categories = []Category{
	{Name: "Technology & Engineering", Careers: []CareerPath{SoftwareEngineer, CybersecurityAnalyst, DataScientist}},
	{Name: "Finance & Business", Careers: []CareerPath{FinancialAnalyst, InvestmentBanker, BusinessConsultant}},
	{Name: "Healthcare & Medicine", Careers: []CareerPath{Doctor, MedicalLabTechnician, Nurse}},
	{Name: "Creative Careers", Careers: []CareerPath{GraphicDesigner, UXUIDesigner, Animator}},
}

var knownCareers = func() map[CareerPath]bool {
	m := make(map[CareerPath]bool)
	for _, c := range categories {
		for _, career := range c.Careers {
			m[career] = true
		}
	}
	return m
}()

// Categories 返回分类目录的副本，顺序固定
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{Name: c.Name, Careers: append([]CareerPath(nil), c.Careers...)}
	}
	return out
}

// Careers 按目录顺序返回全部职业
func Careers() []CareerPath {
	var out []CareerPath
	for _, c := range categories {
		out = append(out, c.Careers...)
	}
	return out
}

func ParseCareerPath(s string) (CareerPath, error) {
	c := CareerPath(s)
	if !knownCareers[c] {
		return "", fmt.Errorf("%w: %q", ErrCareerNotFound, s)
	}
	return c, nil
}

func (c CareerPath) Valid() bool {
	return knownCareers[c]
}

func (c CareerPath) String() string {
	return string(c)
}
