//go:build !cgo

package hal

func RunWindow(_ WindowConfig, _ NewLoop) error {
	return ErrNoWindow
}
