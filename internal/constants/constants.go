package constants

const (
	// DocumentFilename is the default name of the hook configuration
	// document, looked up relative to the working directory.
	DocumentFilename = ".hookrunner.yaml"

	// ManifestFilename is the hook manifest a remote source must carry at
	// its root to advertise the hooks it provides.
	ManifestFilename = ".hookrunner-hooks.yaml"

	// LocalRepo is the sentinel `repo` value for hooks defined entirely in
	// the configuration document rather than a remote source.
	LocalRepo = "local"
)

// Lifecycle stages and the git hooks that back them. StageManual has no git
// hook; it is only reachable through `hookrunner run --stage manual`.
const (
	StagePreCommit        = "pre-commit"
	StagePreMergeCommit   = "pre-merge-commit"
	StagePrePush          = "pre-push"
	StagePrepareCommitMsg = "prepare-commit-msg"
	StageCommitMsg        = "commit-msg"
	StagePostCheckout     = "post-checkout"
	StagePostCommit       = "post-commit"
	StagePostMerge        = "post-merge"
	StagePostRewrite      = "post-rewrite"
	StageManual           = "manual"
)

var (
	ValidStages = []string{
		StagePreCommit,
		StagePreMergeCommit,
		StagePrePush,
		StagePrepareCommitMsg,
		StageCommitMsg,
		StagePostCheckout,
		StagePostCommit,
		StagePostMerge,
		StagePostRewrite,
		StageManual,
	}

	// GitHookStages are the stages git can trigger, in install order. The
	// git hook file shares the stage name.
	GitHookStages = []string{
		StagePreCommit,
		StagePreMergeCommit,
		StagePrePush,
		StagePrepareCommitMsg,
		StageCommitMsg,
		StagePostCheckout,
		StagePostCommit,
		StagePostMerge,
		StagePostRewrite,
	}

	// CommitMsgStages receive the commit message file from git as their
	// only file input.
	CommitMsgStages = []string{StagePrepareCommitMsg, StageCommitMsg}
)

func IsValidStage(name string) bool {
	for _, s := range ValidStages {
		if s == name {
			return true
		}
	}
	return false
}

func IsGitHookStage(name string) bool {
	for _, s := range GitHookStages {
		if s == name {
			return true
		}
	}
	return false
}

// Language tags. The runner executes system, script, and fail hooks itself;
// the managed tags are recognized in documents so they validate cleanly, but
// running them requires per-language tool environments this runner does not
// provide.
const (
	LanguageSystem = "system"
	LanguageScript = "script"
	LanguageFail   = "fail"
)

var (
	RunnableLanguages = []string{LanguageSystem, LanguageScript, LanguageFail}

	ManagedLanguages = []string{"python", "node", "golang", "rust", "ruby", "docker"}
)

func IsValidLanguage(name string) bool {
	return IsRunnableLanguage(name) || isManagedLanguage(name)
}

func IsRunnableLanguage(name string) bool {
	for _, l := range RunnableLanguages {
		if l == name {
			return true
		}
	}
	return false
}

func isManagedLanguage(name string) bool {
	for _, l := range ManagedLanguages {
		if l == name {
			return true
		}
	}
	return false
}
