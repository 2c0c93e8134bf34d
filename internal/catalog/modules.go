package catalog

import (
	"fmt"
	"time"
)

const defaultVideoURL = "https://youtu.be/I9JvDaciaFk"

// Video 学习视频。Duration 为模拟播放计时（秒），并非真实媒体时长
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

func (v Video) PlaybackDuration() time.Duration {
	return time.Duration(v.Duration) * time.Second
}

// Quiz 每个视频对应一道单选题
type Quiz struct {
	ID            string   `json:"id"`
	VideoID       string   `json:"videoId"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"-"`
}

type Module struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Videos      []Video `json:"videos"`
	Quizzes     []Quiz  `json:"quizzes"`
}

// QuizFor 返回视频对应的测验
func (m *Module) QuizFor(videoID string) (*Quiz, bool) {
	for i := range m.Quizzes {
		if m.Quizzes[i].VideoID == videoID {
			return &m.Quizzes[i], true
		}
	}
	return nil, false
}

// VideoRef 视频在目录中的位置
type VideoRef struct {
	Career CareerPath
	Level  Level
	Index  int
	Video  Video
}

func video(id, title, description string) Video {
	return Video{ID: id, Title: title, URL: defaultVideoURL, Duration: 6, Description: description}
}

func quiz(videoID, question, correct string, distractors ...string) Quiz {
	return Quiz{
		ID:            videoID + "_q",
		VideoID:       videoID,
		Question:      question,
		Options:       append([]string{correct}, distractors...),
		CorrectAnswer: correct,
	}
}

// 只有名称与描述、没有视频内容的模块仍用于学习进度初始化
var learningModules = map[CareerPath]map[Level]Module{
	SoftwareEngineer: {
		Beginner: {
			Name:        "Programming Fundamentals",
			Description: "Learn the basics of programming and software development",
			Videos: []Video{
				video("se_b_1", "Introduction to Programming", "Basic concepts and fundamentals of programming"),
				video("se_b_2", "Variables and Data Types", "Understanding variables and different data types"),
				video("se_b_3", "Control Flow", "Loops, conditions, and program flow"),
				video("se_b_4", "Functions and Methods", "Creating reusable code blocks"),
				video("se_b_5", "Object-Oriented Programming", "Introduction to OOP concepts"),
			},
			Quizzes: []Quiz{
				quiz("se_b_1", "What is programming?", "Writing instructions a computer can execute",
					"Repairing computer hardware", "Designing printed circuit boards", "Typing documents"),
				quiz("se_b_2", "What is a variable?", "A named location that stores a value",
					"A fixed number in the processor", "A type of loop", "A compiler error"),
				quiz("se_b_3", "What is a loop?", "A construct that repeats a block of code",
					"A way to declare a variable", "A network connection", "A type of comment"),
				quiz("se_b_4", "What is a function?", "A reusable block of code that performs a task",
					"A variable that never changes", "A database table", "A hardware interrupt"),
				quiz("se_b_5", "What is OOP?", "Organizing code around objects that combine data and behavior",
					"A faster way to compile code", "A database query language", "A version control tool"),
			},
		},
		Intermediate: {
			Name:        "Advanced Programming Concepts",
			Description: "Dive deeper into software development",
			Videos: []Video{
				video("se_i_1", "Design Patterns", "Common software design patterns"),
				video("se_i_2", "API Development", "Building RESTful APIs"),
				video("se_i_3", "Database Design", "Relational database concepts"),
				video("se_i_4", "Testing Strategies", "Unit testing and test-driven development"),
				video("se_i_5", "CI/CD Pipelines", "Continuous integration and deployment"),
			},
			Quizzes: []Quiz{
				quiz("se_i_1", "What is a design pattern?", "A reusable solution to a common design problem",
					"A coding style guide", "A UI color scheme", "A compiler optimization"),
				quiz("se_i_2", "What is an API?", "A defined interface through which programs communicate",
					"A kind of database index", "An operating system", "A source control branch"),
				quiz("se_i_3", "What is a database?", "An organized store of structured data",
					"A programming language", "A web browser", "A test framework"),
				quiz("se_i_4", "What is unit testing?", "Testing the smallest pieces of code in isolation",
					"Testing the whole system in production", "Measuring network latency", "Reviewing UI designs"),
				quiz("se_i_5", "What is CI/CD?", "Automatically building, testing and deploying every change",
					"A code formatting tool", "A type of database replication", "A manual release checklist"),
			},
		},
		Advanced: {
			Name:        "System Design & Architecture",
			Description: "Enterprise-level software design and best practices",
		},
	},
	CybersecurityAnalyst: {
		Beginner: {
			Name:        "Security Fundamentals",
			Description: "Learn the basics of cybersecurity",
			Videos: []Video{
				video("cs_b_1", "Introduction to Cybersecurity", "Basic concepts and terminology"),
				video("cs_b_2", "Network Security Basics", "Understanding network security"),
				video("cs_b_3", "Common Security Threats", "Overview of security threats"),
				video("cs_b_4", "Security Tools", "Basic security tools and usage"),
				video("cs_b_5", "Security Best Practices", "Essential security practices"),
			},
			Quizzes: []Quiz{
				quiz("cs_b_1", "What is cybersecurity?", "Protection of computer systems from threats",
					"A type of computer virus", "A programming language", "A network protocol"),
				quiz("cs_b_2", "What does a firewall filter?", "Network traffic based on security rules",
					"Spelling errors in emails", "Screen brightness", "Disk fragmentation"),
				quiz("cs_b_3", "What is phishing?", "Tricking people into revealing sensitive information",
					"Encrypting a hard drive", "Upgrading an operating system", "Backing up files"),
				quiz("cs_b_4", "What is an antivirus program used for?", "Detecting and removing malicious software",
					"Speeding up downloads", "Editing photos", "Writing spreadsheets"),
				quiz("cs_b_5", "Which practice improves account security?", "Using strong unique passwords with MFA",
					"Sharing passwords with coworkers", "Disabling software updates", "Reusing one password everywhere"),
			},
		},
		Intermediate: {
			Name:        "Advanced Security",
			Description: "Advanced cybersecurity concepts and techniques",
			Videos: []Video{
				video("cs_i_1", "Penetration Testing", "Introduction to penetration testing"),
				video("cs_i_2", "Incident Response", "Handling security incidents"),
				video("cs_i_3", "Malware Analysis", "Understanding and analyzing malware"),
				video("cs_i_4", "Cloud Security", "Security in cloud environments"),
				video("cs_i_5", "Security Automation", "Automating security tasks"),
			},
			Quizzes: []Quiz{
				quiz("cs_i_1", "What is penetration testing?", "Authorized simulated attack on a system",
					"Testing network speed", "Writing secure code", "Installing security software"),
				quiz("cs_i_2", "What is the first goal of incident response?", "Contain the incident to limit damage",
					"Delete all logs", "Publish a press release", "Replace all hardware"),
				quiz("cs_i_3", "What is malware analysis?", "Studying malicious code to understand its behavior",
					"Measuring CPU temperature", "Designing network cables", "Writing user manuals"),
				quiz("cs_i_4", "Who is responsible for security in the cloud?", "Both the provider and the customer",
					"Only the cloud provider", "Only the end users", "Nobody"),
				quiz("cs_i_5", "What does security automation provide?", "Consistent, fast handling of repetitive security tasks",
					"Removal of all security analysts", "Unlimited storage", "Faster screen rendering"),
			},
		},
	},
	DataScientist: {
		Beginner: {
			Name:        "Data Science Basics",
			Description: "Introduction to data science concepts",
			Videos: []Video{
				video("ds_b_1", "Introduction to Data Science", "Overview of data science"),
				video("ds_b_2", "Data Collection", "Methods of data collection"),
				video("ds_b_3", "Data Cleaning", "Basic data cleaning techniques"),
				video("ds_b_4", "Exploratory Analysis", "Basic data analysis"),
				video("ds_b_5", "Data Visualization", "Creating data visualizations"),
			},
			Quizzes: []Quiz{
				quiz("ds_b_1", "What is data science?", "Extracting insights from data",
					"Writing computer programs", "Building websites", "Managing databases"),
				quiz("ds_b_2", "Which is a data collection method?", "Surveys",
					"Compilation", "Defragmentation", "Rendering"),
				quiz("ds_b_3", "What does data cleaning fix?", "Missing, duplicate and inconsistent values",
					"Slow network connections", "Broken keyboards", "Outdated drivers"),
				quiz("ds_b_4", "What is exploratory data analysis?", "Summarizing data to discover patterns",
					"Deploying a model to production", "Encrypting a dataset", "Deleting old records"),
				quiz("ds_b_5", "Which chart best shows a trend over time?", "Line chart",
					"Pie chart", "Word cloud", "Venn diagram"),
			},
		},
		Intermediate: {
			Name:        "Advanced Data Science",
			Description: "Advanced data science and machine learning",
			Videos: []Video{
				video("ds_i_1", "Machine Learning Basics", "Introduction to machine learning"),
				video("ds_i_2", "Statistical Analysis", "Advanced statistical methods"),
				video("ds_i_3", "Deep Learning", "Neural networks and deep learning"),
				video("ds_i_4", "Natural Language Processing", "Text analysis and NLP"),
				video("ds_i_5", "Big Data Processing", "Working with large datasets"),
			},
			Quizzes: []Quiz{
				quiz("ds_i_1", "What is machine learning?", "Systems that learn from data",
					"Manual data analysis", "Computer hardware", "Database management"),
				quiz("ds_i_2", "What does a p-value measure?", "How surprising the data is under the null hypothesis",
					"The size of the dataset", "The speed of a query", "The accuracy of a sensor"),
				quiz("ds_i_3", "What is a neural network?", "Layers of connected units that learn representations",
					"A physical computer network", "A spreadsheet formula", "A sorting algorithm"),
				quiz("ds_i_4", "What is tokenization in NLP?", "Splitting text into smaller units",
					"Encrypting text", "Translating images", "Compressing audio"),
				quiz("ds_i_5", "Which tool is designed for distributed data processing?", "Apache Spark",
					"Notepad", "Paint", "Calculator"),
			},
		},
	},
}

var videoIndex = func() map[string]VideoRef {
	idx := make(map[string]VideoRef)
	for career, levels := range learningModules {
		for level, m := range levels {
			for i, v := range m.Videos {
				idx[v.ID] = VideoRef{Career: career, Level: level, Index: i, Video: v}
			}
		}
	}
	return idx
}()

// GetModule 返回 (职业, 等级) 对应的学习内容；没有视频内容视为未找到
func GetModule(career CareerPath, level Level) (*Module, error) {
	m, ok := learningModules[career][level]
	if !ok || len(m.Videos) == 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrModuleNotFound, career, level)
	}
	out := m
	out.Videos = append([]Video(nil), m.Videos...)
	out.Quizzes = make([]Quiz, len(m.Quizzes))
	for i, q := range m.Quizzes {
		q.Options = append([]string(nil), q.Options...)
		out.Quizzes[i] = q
	}
	return &out, nil
}

// ModuleOutline 返回用于初始化学习进度的模块名称
func ModuleOutline(career CareerPath, level Level) (name string, ok bool) {
	m, ok := learningModules[career][level]
	if !ok {
		return "", false
	}
	return m.Name, true
}

func LookupVideo(videoID string) (VideoRef, error) {
	ref, ok := videoIndex[videoID]
	if !ok {
		return VideoRef{}, fmt.Errorf("%w: %s", ErrVideoNotFound, videoID)
	}
	return ref, nil
}
