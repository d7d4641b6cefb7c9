// Package curriculum отображает возраст ребенка на профиль UK National
// Curriculum, управляющий сложностью генерируемых историй.
package curriculum

// Стадии UK National Curriculum.
const (
	StageEYFS = "EYFS"
	StageKS1  = "Key Stage 1"
	StageKS2  = "Key Stage 2"
	StageKS3  = "Key Stage 3"
)

// Границы поддерживаемого возраста.
const (
	MinAge = 0
	MaxAge = 12
)

// Profile - параметры языковой сложности и отображаемые поля для возраста.
type Profile struct {
	Stage               string   `json:"stage"`
	VocabularyLevel     string   `json:"vocabularyLevel"`
	SentenceComplexity  string   `json:"sentenceComplexity"`
	MoralReasoningLevel string   `json:"moralReasoningLevel"`
	ReadingLevel        string   `json:"readingLevel"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	KeySkills           []string `json:"keySkills"`
}

// Таблица профилей по точному возрасту. Тотальна на [MinAge, MaxAge].
var profiles = map[int]Profile{
	0: {
		Stage:               StageEYFS,
		VocabularyLevel:     "basic",
		SentenceComplexity:  "very simple",
		MoralReasoningLevel: "concrete actions",
		ReadingLevel:        "pre-reading",
		Title:               "Early Years (Ages 0-3)",
		Description:         "Simple words, basic communication, gentle moral concepts through actions.",
		KeySkills:           []string{"Basic vocabulary", "Simple sentences", "Listening skills"},
	},
	1: {
		Stage:               StageEYFS,
		VocabularyLevel:     "basic",
		SentenceComplexity:  "very simple",
		MoralReasoningLevel: "concrete actions",
		ReadingLevel:        "pre-reading",
		Title:               "Early Years (Ages 0-3)",
		Description:         "Simple words, basic communication, gentle moral concepts through actions.",
		KeySkills:           []string{"Basic vocabulary", "Simple sentences", "Listening skills"},
	},
	2: {
		Stage:               StageEYFS,
		VocabularyLevel:     "basic",
		SentenceComplexity:  "very simple",
		MoralReasoningLevel: "concrete actions",
		ReadingLevel:        "pre-reading",
		Title:               "Early Years (Ages 0-3)",
		Description:         "Simple words, basic communication, gentle moral concepts through actions.",
		KeySkills:           []string{"Basic vocabulary", "Simple sentences", "Listening skills"},
	},
	3: {
		Stage:               StageEYFS,
		VocabularyLevel:     "foundation",
		SentenceComplexity:  "simple",
		MoralReasoningLevel: "basic kindness",
		ReadingLevel:        "early phonics",
		Title:               "Early Years (Ages 3-5)",
		Description:         "Foundation vocabulary, simple sentences, basic moral concepts about kindness.",
		KeySkills:           []string{"Phonics awareness", "Story comprehension", "Basic emotions"},
	},
	4: {
		Stage:               StageEYFS,
		VocabularyLevel:     "foundation",
		SentenceComplexity:  "simple",
		MoralReasoningLevel: "basic kindness",
		ReadingLevel:        "developing phonics",
		Title:               "Early Years (Ages 3-5)",
		Description:         "Foundation vocabulary, simple sentences, basic moral concepts about kindness.",
		KeySkills:           []string{"Phonics awareness", "Story comprehension", "Basic emotions"},
	},
	5: {
		Stage:               StageKS1,
		VocabularyLevel:     "phonics-based",
		SentenceComplexity:  "simple with basic punctuation",
		MoralReasoningLevel: "sharing and kindness",
		ReadingLevel:        "independent reading",
		Title:               "Key Stage 1 (Ages 5-7)",
		Description:         "Simple sentences, basic punctuation, phonics-based vocabulary with moral lessons about kindness and sharing.",
		KeySkills:           []string{"Phonics mastery", "Simple punctuation", "Character understanding"},
	},
	6: {
		Stage:               StageKS1,
		VocabularyLevel:     "expanding",
		SentenceComplexity:  "simple with varied punctuation",
		MoralReasoningLevel: "friendship and cooperation",
		ReadingLevel:        "fluent reading",
		Title:               "Key Stage 1 (Ages 5-7)",
		Description:         "Simple sentences, basic punctuation, phonics-based vocabulary with moral lessons about kindness and sharing.",
		KeySkills:           []string{"Reading fluency", "Writing basics", "Moral reasoning"},
	},
	7: {
		Stage:               StageKS1,
		VocabularyLevel:     "age-appropriate academic",
		SentenceComplexity:  "developing complexity",
		MoralReasoningLevel: "basic figurative understanding",
		ReadingLevel:        "confident reading",
		Title:               "Key Stage 1 (Ages 5-7)",
		Description:         "Developing fluency, age-appropriate academic vocabulary, understanding of figurative language basics.",
		KeySkills:           []string{"Independent reading", "Academic vocabulary", "Story structure"},
	},
	8: {
		Stage:               StageKS2,
		VocabularyLevel:     "figurative language introduction",
		SentenceComplexity:  "complex sentences",
		MoralReasoningLevel: "deeper moral reasoning",
		ReadingLevel:        "advanced reading",
		Title:               "Key Stage 2 (Ages 7-11)",
		Description:         "Complex sentences, figurative language, advanced vocabulary with deeper moral reasoning.",
		KeySkills:           []string{"Figurative language", "Complex narratives", "Ethical understanding"},
	},
	9: {
		Stage:               StageKS2,
		VocabularyLevel:     "advanced vocabulary",
		SentenceComplexity:  "varied sentence structures",
		MoralReasoningLevel: "ethical understanding",
		ReadingLevel:        "sophisticated reading",
		Title:               "Key Stage 2 (Ages 7-11)",
		Description:         "Complex sentences, figurative language, advanced vocabulary with deeper moral reasoning.",
		KeySkills:           []string{"Literary devices", "Character development", "Moral complexity"},
	},
	10: {
		Stage:               StageKS2,
		VocabularyLevel:     "sophisticated",
		SentenceComplexity:  "nuanced expression",
		MoralReasoningLevel: "complex moral concepts",
		ReadingLevel:        "secondary preparation",
		Title:               "Key Stage 2 (Ages 7-11)",
		Description:         "Sophisticated vocabulary, nuanced meaning, preparation for secondary curriculum complexity.",
		KeySkills:           []string{"Advanced comprehension", "Nuanced themes", "Critical thinking"},
	},
	11: {
		Stage:               StageKS2,
		VocabularyLevel:     "secondary preparation",
		SentenceComplexity:  "advanced structures",
		MoralReasoningLevel: "ethical reasoning",
		ReadingLevel:        "year 7 ready",
		Title:               "Key Stage 2 (Ages 7-11)",
		Description:         "Reading and writing sufficiently fluent for year 7, advanced moral and ethical reasoning.",
		KeySkills:           []string{"Secondary preparation", "Ethical reasoning", "Advanced literacy"},
	},
	12: {
		Stage:               StageKS3,
		VocabularyLevel:     "standard English proficiency",
		SentenceComplexity:  "conscious language control",
		MoralReasoningLevel: "philosophical concepts",
		ReadingLevel:        "advanced secondary",
		Title:               "Key Stage 3 (Ages 11-14)",
		Description:         "Standard English proficiency, conscious language control, complex moral and philosophical concepts.",
		KeySkills:           []string{"Standard English", "Philosophical thinking", "Advanced communication"},
	},
}

// Resolve возвращает профиль для возраста. Тотальна: возраст вне границ
// прижимается к ближайшей границе, результат детерминирован.
func Resolve(age int) Profile {
	if age < MinAge {
		age = MinAge
	}
	if age > MaxAge {
		age = MaxAge
	}
	return profiles[age]
}

// IsValidAge сообщает, входит ли возраст в поддерживаемый диапазон.
func IsValidAge(age int) bool {
	return age >= MinAge && age <= MaxAge
}
