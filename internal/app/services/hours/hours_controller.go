package hours

import (
	"net/http"
	"strconv"

	"openstatus-service/internal/app/config"
	"openstatus-service/internal/pkg/constvars"
	"openstatus-service/internal/pkg/dto/requests"
	"openstatus-service/internal/pkg/dto/responses"
	"openstatus-service/internal/pkg/exceptions"
	"openstatus-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HoursController struct {
	Usecase        HoursUsecase
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewHoursController(usecase HoursUsecase, internalConfig *config.InternalConfig, log *zap.Logger) *HoursController {
	return &HoursController{
		Usecase:        usecase,
		InternalConfig: internalConfig,
		Log:            log,
	}
}

func (c *HoursController) Index(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Health{
		Service: constvars.ServiceName,
		Version: c.InternalConfig.App.Version,
		Endpoints: []string{
			"GET /",
			"GET /time/hk",
			"GET /open/hk",
			"GET /open/{loc}",
		},
	})
}

func (c *HoursController) GetCurrentTime(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, c.Usecase.HandleGetCurrentTime())
}

// GetOpenStatusHongKong is the legacy route: the location key is the
// literal "hk", never read from the URL.
func (c *HoursController) GetOpenStatusHongKong(w http.ResponseWriter, r *http.Request) {
	c.respondOpenStatus(w, r, constvars.LocationKeyHongKong)
}

func (c *HoursController) GetOpenStatusByLocation(w http.ResponseWriter, r *http.Request) {
	c.respondOpenStatus(w, r, chi.URLParam(r, constvars.URLParamLocationKey))
}

func (c *HoursController) respondOpenStatus(w http.ResponseWriter, r *http.Request, locationKey string) {
	request, err := c.buildOpenStatusQuery(r, locationKey)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	result, err := c.Usecase.HandleGetOpenStatus(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (c *HoursController) buildOpenStatusQuery(r *http.Request, locationKey string) (*requests.OpenStatusQuery, error) {
	request := &requests.OpenStatusQuery{
		LocationKey: locationKey,
		Date:        r.URL.Query().Get(constvars.QueryParamDate),
	}

	if raw := r.URL.Query().Get(constvars.QueryParamOffsetDays); raw != "" {
		offsetDays, err := strconv.Atoi(raw)
		if err != nil {
			return nil, exceptions.ErrInvalidOffsetDays(err)
		}
		request.OffsetDays = offsetDays
	}

	return request, nil
}
