package config

const (
	// DefaultProjectPath is the default workshop root
	DefaultProjectPath = "."
	// DefaultLabsPath is the default notebook directory under the root
	DefaultLabsPath = "labs"
	// DefaultJupyterBin is the execution engine binary
	DefaultJupyterBin = "jupyter"
	// DefaultKernelName is the kernel notebooks run against
	DefaultKernelName = "python3"
	// DefaultOutputJSONFile is the default results file name
	DefaultOutputJSONFile = "notebook-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultHTMLReportFile is the default HTML report name
	DefaultHTMLReportFile = "notebook-report.html"
	// DefaultCategoriesFile is the category-to-timeout table
	DefaultCategoriesFile = "categories.yaml"
	// DefaultLockFileName is the accelerator lock file under the temp dir
	DefaultLockFileName = "nbt-accelerator.lock"
)

// DefaultPathsToIgnore are directories skipped when scanning for notebooks
var DefaultPathsToIgnore = []string{
	".ipynb_checkpoints",
	"venv",
	".venv",
	"node_modules",
	"__pycache__",
	"storage",
}

// DefaultRuntimeMarkers identify an installed accelerator SDK runtime.
// A marker is either a binary resolvable on PATH or a filesystem path;
// the environment check requires at least one to exist.
var DefaultRuntimeMarkers = []string{
	"neuron-ls",
	"/opt/aws/neuron",
}
