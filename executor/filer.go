package executor

import (
	"os"

	"github.com/kakkky/starsole/errs"
)

//go:generate mockgen -package=executor -source=./filer.go -destination=./filer_mock.go
type filer interface {
	readFile(path string) ([]byte, error)
	exists(path string) bool
}

type defaultFiler struct{}

func newDefaultFiler() *defaultFiler {
	return &defaultFiler{}
}

func (df *defaultFiler) readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewInternalError("failed to read module file").Wrap(err)
	}
	return data, nil
}

func (df *defaultFiler) exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
