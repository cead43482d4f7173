package sparse

const (
	// Empty marks an unset cursor or Info slot.
	Empty int64 = -1

	DEFAULT_PRINTER_WIDTH int     = 80
	DEFAULT_PRINT_LEVEL   int     = 3
	DEFAULT_DENSITY       float64 = 0.1

	// Report levels
	PRINT_NONE    int = 0
	PRINT_ERRORS  int = 1
	PRINT_SUMMARY int = 3
	PRINT_ENTRIES int = 4
	PRINT_ALL     int = 5
)

// Replace spConfig
type Configuration struct {
	PrinterWidth int    `yaml:"printer_width"` // Default: 80
	PrintLevel   int    `yaml:"print_level"`   // Report verbosity, see PRINT_*
	Annotate     int    `yaml:"annotate"`      // 0: None, 1: Summary, 2: Full trace
	Debug        bool   `yaml:"debug"`         // Validate before AAT and poison the cursor workspace
	LogLevel     string `yaml:"log_level"`

	// Random pattern generator
	Seed     int64   `yaml:"seed"`
	Density  float64 `yaml:"density"`
	Diagonal bool    `yaml:"diagonal"`
}

// Matrix is a pattern builder. Elements are stamped with 1-based indices and
// kept in sorted column lists, then compressed with CSC.
type Matrix struct {
	Config Configuration

	Size int64 // Matrix size

	Diags      []*Element // Diagonal elements [1...Size]
	FirstInCol []*Element // First element in each column [1...Size]

	// Counts
	Elements int // Element count
}

type Element struct {
	Real      float64
	Row       int64
	Col       int64
	NextInCol *Element
}

// CSC is a square matrix in compressed-sparse-column form with 0-based
// indices. Ax may be nil for a pattern-only matrix.
type CSC struct {
	N  int64
	Ap []int64 // Column pointers [0...N]
	Ai []int64 // Row indices [0...Ap[N]-1]
	Ax []float64
}

// Info is the status record filled by AAT.
type Info struct {
	Status    Status
	N         int64   // dimension of A
	NZ        int64   // number of nonzeros in A
	Symmetry  float64 // symmetry of the nonzero pattern of A
	NZDiag    int64   // nonzeros on the diagonal of A
	NZAPlusAT int64   // nonzeros in A+A', excluding the diagonal
	NZBoth    int64   // off-diagonal pairs present on both sides
}

// Pattern is the result of (*CSC).AAT.
type Pattern struct {
	Len   []int64 // Len[j]: length of column j of A+A', excluding the diagonal
	NZAAT uint64
	Info  Info
}
