package config

// QuestionsConfig is the root of the question pool YAML file
type QuestionsConfig struct {
	Questions []QuestionConfig `yaml:"questions"`
}

type QuestionConfig struct {
	Prompt  string   `yaml:"prompt"`
	Answers []string `yaml:"answers"`
}
