package controller

import (
	"errors"

	"obe_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the response envelope. Missing data
// is a 404, broken course configuration a 422; anything else is logged and
// becomes a 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrInvalidThresholds):
		util.UnprocessableEntity(ctx, err.Error())
	case errors.Is(err, util.ErrMarkOutOfRange),
		errors.Is(err, util.ErrDuplicateCourse),
		errors.Is(err, util.ErrDuplicateQuestion),
		errors.Is(err, util.ErrOutcomeHasMappings),
		errors.Is(err, util.ErrInvalidStatus):
		util.BadRequest(ctx, err.Error())
	case util.IsNotFound(err):
		util.NotFound(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
