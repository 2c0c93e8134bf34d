package catalog

// Question 诊断测试题
type Question struct {
	ID            int      `json:"id"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"-"`
}

var diagnosticQuestions = map[CareerPath][]Question{
	SoftwareEngineer: {
		{
			ID:   1,
			Text: "What is the primary purpose of version control systems like Git?",
			Options: []string{
				"To track changes in code and collaborate with others",
				"To compile code faster",
				"To automatically fix bugs",
				"To deploy applications",
			},
			CorrectAnswer: "To track changes in code and collaborate with others",
		},
		{
			ID:            2,
			Text:          "Which data structure would be most efficient for implementing a LIFO pattern?",
			Options:       []string{"Queue", "Stack", "Array", "Linked List"},
			CorrectAnswer: "Stack",
		},
		{
			ID:   3,
			Text: "What is the purpose of unit testing?",
			Options: []string{
				"To test the entire application at once",
				"To verify individual components work as expected",
				"To check the user interface",
				"To measure application performance",
			},
			CorrectAnswer: "To verify individual components work as expected",
		},
		{
			ID:   4,
			Text: "What is a RESTful API?",
			Options: []string{
				"A type of database",
				"A programming language",
				"An architectural style for web services",
				"A testing framework",
			},
			CorrectAnswer: "An architectural style for web services",
		},
		{
			ID:   5,
			Text: "What is the purpose of dependency injection?",
			Options: []string{
				"To make code run faster",
				"To reduce coupling between components",
				"To create user interfaces",
				"To compress files",
			},
			CorrectAnswer: "To reduce coupling between components",
		},
	},
	CybersecurityAnalyst: {
		{
			ID:   1,
			Text: "What is the purpose of a firewall in network security?",
			Options: []string{
				"To monitor network traffic and block unauthorized access",
				"To speed up internet connection",
				"To store sensitive data",
				"To compress network packets",
			},
			CorrectAnswer: "To monitor network traffic and block unauthorized access",
		},
		{
			ID:   2,
			Text: "What is a SQL injection attack?",
			Options: []string{
				"A virus that affects SQL databases",
				"A malicious SQL query inserted into application input",
				"A tool for database optimization",
				"A type of database backup",
			},
			CorrectAnswer: "A malicious SQL query inserted into application input",
		},
		{
			ID:   3,
			Text: "What is two-factor authentication?",
			Options: []string{
				"Using two different passwords",
				"Logging in from two devices",
				"Using two security questions",
				"Using two different forms of identification to verify identity",
			},
			CorrectAnswer: "Using two different forms of identification to verify identity",
		},
		{
			ID:   4,
			Text: "What is a DDoS attack?",
			Options: []string{
				"A virus that deletes data",
				"An attempt to make a system unavailable by overwhelming it with traffic",
				"A type of encryption",
				"A software bug",
			},
			CorrectAnswer: "An attempt to make a system unavailable by overwhelming it with traffic",
		},
		{
			ID:   5,
			Text: "What is the purpose of penetration testing?",
			Options: []string{
				"To test network speed",
				"To identify and exploit security vulnerabilities",
				"To backup system data",
				"To monitor user activity",
			},
			CorrectAnswer: "To identify and exploit security vulnerabilities",
		},
	},
	DataScientist: {
		{
			ID:   1,
			Text: "What is the purpose of data normalization?",
			Options: []string{
				"To increase data size",
				"To scale features to a similar range",
				"To delete duplicate data",
				"To compress data",
			},
			CorrectAnswer: "To scale features to a similar range",
		},
		{
			ID:   2,
			Text: "What is overfitting in machine learning?",
			Options: []string{
				"When a model performs poorly on training data",
				"When a model performs well on training data but poorly on new data",
				"When a model is too simple",
				"When a model runs too slowly",
			},
			CorrectAnswer: "When a model performs well on training data but poorly on new data",
		},
		{
			ID:   3,
			Text: "What is the purpose of cross-validation?",
			Options: []string{
				"To clean data",
				"To evaluate model performance on different data subsets",
				"To visualize data",
				"To compress data",
			},
			CorrectAnswer: "To evaluate model performance on different data subsets",
		},
		{
			ID:   4,
			Text: "What is a confusion matrix used for?",
			Options: []string{
				"To measure model complexity",
				"To evaluate classification model performance",
				"To store data",
				"To generate random numbers",
			},
			CorrectAnswer: "To evaluate classification model performance",
		},
		{
			ID:   5,
			Text: "What is the purpose of feature engineering?",
			Options: []string{
				"To create new relevant features from existing data",
				"To delete unnecessary data",
				"To compress data",
				"To encrypt data",
			},
			CorrectAnswer: "To create new relevant features from existing data",
		},
	},
}

// Questions 返回职业对应的题目；未配置题目的职业返回空切片
func Questions(career CareerPath) []Question {
	qs := diagnosticQuestions[career]
	out := make([]Question, len(qs))
	for i, q := range qs {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
