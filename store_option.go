package grove

import "github.com/spf13/afero"

const (
	// defaultExpectedRecords sizes the outer first-name table.
	defaultExpectedRecords = 64
	// defaultExpectedPerName sizes each inner last-name table.
	defaultExpectedPerName = 6
)

type options struct {
	// The expected number of distinct first names; the outer table is sized
	// to the smallest prime that keeps it under the load factor.
	expectedRecords int

	// The expected number of distinct last names sharing one first-name
	// bucket; every inner table is sized from it the same way.
	expectedPerName int

	// The file system LoadFile reads datasets through. The default is the
	// os package.
	fs FileSystem
}

func defaultOptions() *options {
	return &options{
		expectedRecords: defaultExpectedRecords,
		expectedPerName: defaultExpectedPerName,
		fs:              afero.NewOsFs(),
	}
}

type Option interface {
	apply(*options)
}

type funcOption struct {
	fn func(*options)
}

func (funcOpt funcOption) apply(o *options) {
	funcOpt.fn(o)
}

func newFuncOption(fn func(*options)) *funcOption {
	return &funcOption{
		fn: fn,
	}
}

// WithExpectedRecords set the expected number of distinct first names.
func WithExpectedRecords(expected int) Option {
	return newFuncOption(func(o *options) {
		o.expectedRecords = expected
	})
}

// WithExpectedPerName set the expected number of distinct last names per
// first-name bucket.
func WithExpectedPerName(expected int) Option {
	return newFuncOption(func(o *options) {
		o.expectedPerName = expected
	})
}

// WithFileSystem set the file system LoadFile reads through.
func WithFileSystem(fs FileSystem) Option {
	return newFuncOption(func(o *options) {
		o.fs = fs
	})
}
