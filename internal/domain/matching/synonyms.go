package matching

var DefaultSynonyms = map[string][]string{
	"javascript": {"js", "ecmascript", "es6", "es2015", "es2020"},
	"typescript": {"ts"},
	"react":      {"reactjs", "react.js"},
	"vue":        {"vuejs", "vue.js"},
	"angular":    {"angularjs"},
	"node":       {"nodejs", "node.js"},
	"golang":     {"go"},
	"python":     {"py"},
	"c#":         {"csharp", "dotnet", ".net"},
	"c++":        {"cpp"},
	"postgresql": {"postgres", "psql"},
	"mysql":      {"mariadb"},
	"mongodb":    {"mongo"},
	"kubernetes": {"k8s"},
	"docker":     {"containerization"},
	"aws":        {"amazon web services"},
	"gcp":        {"google cloud", "google cloud platform"},
	"ci/cd":      {"cicd", "continuous integration"},
}
