package repositories

import (
	"errors"
	"fmt"

	"newsroom-cms/models"

	"gorm.io/gorm"
)

// translate maps gorm errors onto the model error kinds. The database
// must be opened with TranslateError for duplicate keys to surface.
func translate(err error, kind string, key interface{}) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.NotFound(kind, key)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.ErrorConflict{Message: fmt.Sprintf("%s %v conflicts with an existing record", kind, key)}
	default:
		return err
	}
}
