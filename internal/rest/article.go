package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"newsbrief/domain"
	"newsbrief/internal/rest/request"
	"newsbrief/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

const (
	DefaultRankLimit = 10
	RankMin          = 1
	RankMax          = 30
)

// ArticleHandler  represent the httphandler for article
type ArticleHandler struct {
	Service  domain.ArticleUsecase
	Trending domain.TrendingUsecase
}

func NewArticleHandler(svc domain.ArticleUsecase, trending domain.TrendingUsecase) *ArticleHandler {
	return &ArticleHandler{
		Service:  svc,
		Trending: trending,
	}
}

// Fetch will fetch every article
func (a *ArticleHandler) Fetch(c *gin.Context) {
	listAr, err := a.Service.Fetch(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewArticleListFromDomain(listAr))
}

// Newest will fetch the articles ordered by publish date descending
func (a *ArticleHandler) Newest(c *gin.Context) {
	listAr, err := a.Trending.Newest(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewArticleListFromDomain(listAr))
}

// TopTrending will fetch the articles ordered by cached trending score
func (a *ArticleHandler) TopTrending(c *gin.Context) {
	listAr, err := a.Trending.TopTrending(c.Request.Context(), rankLimit(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewArticleListFromDomain(listAr))
}

// TopByMetric will fetch the articles ordered by the given engagement metric
func (a *ArticleHandler) TopByMetric(c *gin.Context) {
	metric := domain.RankMetric(c.DefaultQuery("metric", string(domain.RankViews)))

	listAr, err := a.Trending.TopByMetric(c.Request.Context(), metric, rankLimit(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewArticleListFromDomain(listAr))
}

// GetByID will get article by given id, counting the read as a view
func (a *ArticleHandler) GetByID(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	art, err := a.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewArticleFromDomain(&art))
}

// Store will store the article by given request body
func (a *ArticleHandler) Store(c *gin.Context) {
	var req request.Article
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	if ok, err := isRequestValid(&req); !ok {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	article := req.ToDomain()
	if err := a.Service.Store(c.Request.Context(), &article); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewArticleFromDomain(&article))
}

// Update will update the article by given param and request body
func (a *ArticleHandler) Update(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.Article
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	if ok, err := isRequestValid(&req); !ok {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	article := req.ToDomain()
	article.ID = id
	if err := a.Service.Update(c.Request.Context(), &article); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewArticleFromDomain(&article))
}

// Delete will delete the article by given param
func (a *ArticleHandler) Delete(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := a.Service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleLike flips the like state for the authenticated user and returns it
func (a *ArticleHandler) ToggleLike(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	liked, err := a.Service.ToggleLike(c.Request.Context(), id, userID.(int64))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// IsLiked reports the like state; anonymous visitors always read false
func (a *ArticleHandler) IsLiked(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var uid int64
	if userID, exists := c.Get("user_id"); exists {
		uid = userID.(int64)
	}

	liked, err := a.Service.IsLiked(c.Request.Context(), id, uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

func isRequestValid(m *request.Article) (bool, error) {
	validate := validator.New()
	if err := validate.Struct(m); err != nil {
		return false, err
	}
	return true, nil
}

func paramID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func rankLimit(c *gin.Context) int64 {
	limit, err := strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil || limit < RankMin || limit > RankMax {
		return DefaultRankLimit
	}
	return limit
}

// getStatusCode will get the code of the error from the usecase layer
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch err {
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrForbidden:
		return http.StatusForbidden
	case domain.ErrBadParamInput:
		return http.StatusBadRequest
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
