package postgres

import "fmt"

// wrapDBErr translates driver errors into repository sentinels and
// annotates them with the calling operation.
func wrapDBErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s:%w", op, translateDBErr(err))
}
