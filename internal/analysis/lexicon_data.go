package analysis

var defaultSkills = map[string][]string{
	CategoryTechnical: {
		"python", "java", "c++", "javascript", "react", "angular", "vue", "node", "django", "flask",
		"sql", "nosql", "mysql", "postgresql", "mongodb", "aws", "azure", "gcp", "docker", "kubernetes",
		"git", "linux", "html", "css", "machine learning", "deep learning", "pandas", "numpy", "scikit-learn",
		"tensorflow", "pytorch",
	},
	CategorySoft: {
		"communication", "leadership", "teamwork", "problem solving", "critical thinking", "time management",
		"adaptability", "creativity", "collaboration", "negotiation", "presentation", "mentoring",
	},
	CategoryTools: {
		"jira", "confluence", "slack", "trello", "asana", "zoom", "ms office", "excel", "powerpoint",
		"tableau", "power bi", "figma", "photoshop", "illustrator", "vscode", "pycharm",
	},
}

var defaultCVKeywords = []string{
	"experience", "education", "skills", "profile", "objective", "summary",
	"employment", "work history", "professional", "qualifications", "career",
	"projects", "achievements", "certifications", "languages", "interests",
	"resume", "curriculum vitae", "cv", "portfolio", "references",
}

var defaultJDKeywords = []string{
	"responsibilities", "requirements", "qualifications", "looking for",
	"position", "role", "job description", "duties", "we are seeking",
	"candidate", "must have", "should have", "preferred", "benefits",
	"salary", "compensation", "apply", "hiring", "vacancy", "opening",
}

var defaultContactPatterns = []string{
	`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`,
	`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`,
	`\b\+?\d{1,3}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,9}\b`,
	`\blinkedin\.com/in/[\w-]+\b`,
	`\bgithub\.com/[\w-]+\b`,
}

var defaultCompanyPatterns = []string{
	`\b(company|organization|firm|corporation|startup|enterprise)\b`,
	`\b(we are|we're|our team|our company|join us|about us)\b`,
	`\b(apply now|send resume|submit application|how to apply)\b`,
}

// englishStopWords is the common English stop list used by TF-IDF tooling.
var englishStopWords = []string{
	"a", "about", "above", "across", "after", "afterwards", "again", "against",
	"all", "almost", "alone", "along", "already", "also", "although", "always",
	"am", "among", "amongst", "amoungst", "amount", "an", "and", "another",
	"any", "anyhow", "anyone", "anything", "anyway", "anywhere", "are",
	"around", "as", "at", "back", "be", "became", "because", "become",
	"becomes", "becoming", "been", "before", "beforehand", "behind", "being",
	"below", "beside", "besides", "between", "beyond", "bill", "both",
	"bottom", "but", "by", "call", "can", "cannot", "cant", "co", "con",
	"could", "couldnt", "cry", "de", "describe", "detail", "do", "done",
	"down", "due", "during", "each", "eg", "eight", "either", "eleven", "else",
	"elsewhere", "empty", "enough", "etc", "even", "ever", "every", "everyone",
	"everything", "everywhere", "except", "few", "fifteen", "fifty", "fill",
	"find", "fire", "first", "five", "for", "former", "formerly", "forty",
	"found", "four", "from", "front", "full", "further", "get", "give", "go",
	"had", "has", "hasnt", "have", "he", "hence", "her", "here", "hereafter",
	"hereby", "herein", "hereupon", "hers", "herself", "him", "himself", "his",
	"how", "however", "hundred", "i", "ie", "if", "in", "inc", "indeed",
	"interest", "into", "is", "it", "its", "itself", "keep", "last", "latter",
	"latterly", "least", "less", "ltd", "made", "many", "may", "me",
	"meanwhile", "might", "mill", "mine", "more", "moreover", "most", "mostly",
	"move", "much", "must", "my", "myself", "name", "namely", "neither",
	"never", "nevertheless", "next", "nine", "no", "nobody", "none", "noone",
	"nor", "not", "nothing", "now", "nowhere", "of", "off", "often", "on",
	"once", "one", "only", "onto", "or", "other", "others", "otherwise", "our",
	"ours", "ourselves", "out", "over", "own", "part", "per", "perhaps",
	"please", "put", "rather", "re", "same", "see", "seem", "seemed",
	"seeming", "seems", "serious", "several", "she", "should", "show", "side",
	"since", "sincere", "six", "sixty", "so", "some", "somehow", "someone",
	"something", "sometime", "sometimes", "somewhere", "still", "such",
	"system", "take", "ten", "than", "that", "the", "their", "them",
	"themselves", "then", "thence", "there", "thereafter", "thereby",
	"therefore", "therein", "thereupon", "these", "they", "thick", "thin",
	"third", "this", "those", "though", "three", "through", "throughout",
	"thru", "thus", "to", "together", "too", "top", "toward", "towards",
	"twelve", "twenty", "two", "un", "under", "until", "up", "upon", "us",
	"very", "via", "was", "we", "well", "were", "what", "whatever", "when",
	"whence", "whenever", "where", "whereafter", "whereas", "whereby",
	"wherein", "whereupon", "wherever", "whether", "which", "while", "whither",
	"who", "whoever", "whole", "whom", "whose", "why", "will", "with",
	"within", "without", "would", "yet", "you", "your", "yours", "yourself",
	"yourselves",
}
