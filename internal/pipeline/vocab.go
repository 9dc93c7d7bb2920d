package pipeline

// Default vocabularies. All tables are data, not code: tests and callers
// may substitute their own without touching the matchers.

// DefaultVocabulary is the categorized skill keyword table. Keywords are
// lowercase and matched as exact tokens.
var DefaultVocabulary = Vocabulary{
	"Languages":  {"python", "java", "javascript", "typescript", "c++", "sql", "go"},
	"Frameworks": {"react", "node.js", "django", "flask", "next.js", "spring", "graphql"},
	"Tools":      {"docker", "kubernetes", "aws", "git", "jenkins", "rabbitmq", "terraform"},
}

// ProfileSkillsCategory is the category added to a skill record when an
// external profile check contributes skills of its own.
const ProfileSkillsCategory = "External Profile Skills"

// DefaultWeights maps complexity keywords to their weight. A keyword counts
// once per project segment.
var DefaultWeights = map[string]int{
	"scalable":       3,
	"microservices":  3,
	"containerized":  3,
	"ci/cd":          2,
	"optimized":      2,
	"authentication": 1,
	"api":            1,
	"cloud":          1,
	"database":       1,
	"latency":        1,
}

// DefaultCorpus holds canonical project descriptions that candidate
// segments are compared against for the similarity score.
var DefaultCorpus = []string{
	"Built a REST API with Django",
	"Developed a chatbot using NLP",
	"Architected scalable microservices",
}
