package rules

// The three rule tables below are static data, declared separately from the
// evaluator so each rule can be unit tested in isolation. Point values per
// category sum to 25.

// pushTrigger covers the common shapes of a push trigger: "push:" plus
// either a branches filter or a literal main reference.
var pushTrigger = allOf(
	contains("push:"),
	anyOf(contains("branches:"), contains("main")),
)

var prTrigger = contains("pull_request:")

// CI is the continuous-integration category, scored from ci.yml.
var CI = Category{
	Name: "CI Pipeline",
	File: "ci.yml",
	Rules: []Rule{
		{
			Name:       "Triggers configured",
			Points:     5,
			Match:      allOf(pushTrigger, prTrigger),
			PassDetail: "push + pull_request",
			FailDetail: "No triggers configured",
			Fallback: &Partial{
				Points: 2,
				Match:  anyOf(pushTrigger, prTrigger),
				Detail: "Missing push or pull_request trigger",
			},
		},
		{
			Name:       "Python setup",
			Points:     5,
			Match:      contains("setup-python"),
			PassDetail: "actions/setup-python",
			FailDetail: "Missing setup-python action",
		},
		{
			Name:       "Dependencies install",
			Points:     5,
			Match:      allOf(contains("pip install"), contains("requirements.txt")),
			PassDetail: "pip install -r requirements.txt",
			FailDetail: "Missing pip install",
		},
		{
			Name:       "Linting",
			Points:     5,
			Match:      contains("flake8"),
			PassDetail: "flake8 configured",
			FailDetail: "Missing flake8",
		},
		{
			Name:       "Tests",
			Points:     5,
			Match:      contains("pytest"),
			PassDetail: "pytest configured",
			FailDetail: "Missing pytest",
		},
	},
}

// Build is the build/publish category, scored from build.yml.
var Build = Category{
	Name: "Build Pipeline",
	File: "build.yml",
	Rules: []Rule{
		{
			Name:       "Docker Buildx",
			Points:     5,
			Match:      contains("docker/setup-buildx-action"),
			PassDetail: "Configured",
			FailDetail: "Missing setup-buildx-action",
		},
		{
			Name:       "Registry login",
			Points:     5,
			Match:      contains("docker/login-action"),
			PassDetail: "login-action configured",
			FailDetail: "Missing login-action",
		},
		{
			Name:       "GitHub Registry",
			Points:     5,
			Match:      contains("ghcr.io"),
			PassDetail: "ghcr.io configured",
			FailDetail: "Missing ghcr.io",
		},
		{
			Name:       "Build & Push",
			Points:     5,
			Match:      contains("docker/build-push-action"),
			PassDetail: "build-push-action configured",
			FailDetail: "Missing build-push-action",
		},
		{
			Name:       "Permissions",
			Points:     5,
			Match:      allOf(contains("permissions:"), contains("packages: write")),
			PassDetail: "packages: write",
			FailDetail: "Missing packages: write permission",
		},
	},
}

// Deploy is the deployment category, scored from deploy.yml. The staging and
// production checks are case-insensitive; job names vary in casing.
var Deploy = Category{
	Name: "Deploy Pipeline",
	File: "deploy.yml",
	Rules: []Rule{
		{
			Name:       "Staging job",
			Points:     5,
			Match:      containsFold("staging"),
			PassDetail: "Staging deployment configured",
			FailDetail: "Missing staging deployment",
		},
		{
			Name:       "Production job",
			Points:     5,
			Match:      containsFold("production"),
			PassDetail: "Production deployment configured",
			FailDetail: "Missing production deployment",
		},
		{
			Name:       "Environments",
			Points:     5,
			Match:      contains("environment:"),
			PassDetail: "GitHub environments configured",
			FailDetail: "Missing environment configuration",
		},
		{
			Name:       "Conditional deploy",
			Points:     5,
			Match:      contains("if:"),
			PassDetail: "Conditions configured",
			FailDetail: "Missing deployment conditions",
		},
		{
			Name:       "Release trigger",
			Points:     5,
			Match:      anyOf(contains("release:"), contains("github.event_name == 'release'")),
			PassDetail: "Production on release",
			FailDetail: "Missing release trigger",
		},
	},
}

// Categories returns the rule tables in display order.
func Categories() []Category {
	return []Category{CI, Build, Deploy}
}
