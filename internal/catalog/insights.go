package catalog

import "fmt"

type MarketDemand struct {
	Level       string `json:"level"`
	Growth      string `json:"growth"`
	Description string `json:"description"`
}

type SalaryRange struct {
	Entry  string `json:"entry"`
	Mid    string `json:"mid"`
	Senior string `json:"senior"`
}

// Insight 职业市场趋势与薪资信息
type Insight struct {
	MarketDemand MarketDemand `json:"marketDemand"`
	SalaryRange  SalaryRange  `json:"salaryRange"`
	Trends       []string     `json:"trends"`
}

var careerInsights = map[CareerPath]Insight{
	SoftwareEngineer: {
		MarketDemand: MarketDemand{Level: "High", Growth: "22%", Description: "Continued strong growth due to digital transformation across industries"},
		SalaryRange:  SalaryRange{Entry: "$70,000", Mid: "$100,000", Senior: "$150,000+"},
		Trends: []string{
			"Increased demand for AI/ML expertise",
			"Rise of remote-first development teams",
			"Growing emphasis on cloud-native development",
			"Focus on cybersecurity integration",
		},
	},
	CybersecurityAnalyst: {
		MarketDemand: MarketDemand{Level: "High", Growth: "31%", Description: "Critical demand driven by increasing cyber threats and regulations"},
		SalaryRange:  SalaryRange{Entry: "$65,000", Mid: "$95,000", Senior: "$140,000+"},
		Trends: []string{
			"Zero-trust architecture adoption",
			"Cloud security specialization",
			"AI-powered threat detection",
			"IoT security focus",
		},
	},
	DataScientist: {
		MarketDemand: MarketDemand{Level: "High", Growth: "28%", Description: "Strong growth due to data-driven decision making across sectors"},
		SalaryRange:  SalaryRange{Entry: "$75,000", Mid: "$110,000", Senior: "$160,000+"},
		Trends: []string{
			"AutoML adoption",
			"Real-time analytics growth",
			"Edge computing integration",
			"Ethical AI focus",
		},
	},
	FinancialAnalyst: {
		MarketDemand: MarketDemand{Level: "Medium", Growth: "15%", Description: "Steady growth with increasing focus on data-driven financial decisions"},
		SalaryRange:  SalaryRange{Entry: "$60,000", Mid: "$85,000", Senior: "$120,000+"},
		Trends: []string{
			"FinTech integration",
			"ESG investing growth",
			"Blockchain technology adoption",
			"AI-driven analysis",
		},
	},
}

func GetInsight(career CareerPath) (*Insight, error) {
	in, ok := careerInsights[career]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInsightNotFound, career)
	}
	in.Trends = append([]string(nil), in.Trends...)
	return &in, nil
}
