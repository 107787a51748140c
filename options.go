package bigbyte

// DefaultBlockSize is the block size used when none is configured.
const DefaultBlockSize = 1000

// DefaultConcurrency bounds parallel block loads in ReadArrayAt.
const DefaultConcurrency = 4

// Options configures array construction.
type Options struct {
	BlockSize   int
	Concurrency int
}

// Option is a functional option for the array constructors.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		BlockSize:   DefaultBlockSize,
		Concurrency: DefaultConcurrency,
	}
}

// WithBlockSize sets the size of the lazily allocated blocks.
func WithBlockSize(n int) Option {
	return func(o *Options) { o.BlockSize = n }
}

// WithConcurrency sets the number of parallel block loads for ReadArrayAt.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Concurrency = n
		}
	}
}
