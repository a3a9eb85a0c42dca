package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"shelf-assist-be/internal/constant"
	"shelf-assist-be/internal/dto"
	"shelf-assist-be/internal/pkg/logger"
	"shelf-assist-be/pkg/textnorm"
)

// ILookupService asks the external position service where an identified
// product lives and announces the answer. The returned bool reports whether
// the item was actually located.
type ILookupService interface {
	Locate(ctx context.Context, productName string) bool
}

type lookupService struct {
	url      string
	cache    *cache.Cache
	cacheTTL time.Duration
	feedback IFeedbackService
	client   *http.Client
	logger   logger.ILogger
}

func NewLookupService(
	url string,
	cacheTTL time.Duration,
	feedback IFeedbackService,
	sysLogger logger.ILogger,
) ILookupService {
	return &lookupService{
		url:      url,
		cache:    cache.New(cacheTTL, 2*cacheTTL),
		cacheTTL: cacheTTL,
		feedback: feedback,
		client:   &http.Client{},
		logger:   sysLogger,
	}
}

func (s *lookupService) Locate(ctx context.Context, productName string) bool {
	key := textnorm.Clean(productName)

	// Shelf positions move rarely; answer repeat queries from cache.
	if sentence, found := s.cache.Get(key); found {
		s.feedback.Announce(sentence.(string))
		return true
	}

	payload, err := json.Marshal(dto.PositionRequest{ItemName: key})
	if err != nil {
		s.feedback.Announce(fmt.Sprintf(constant.AnnounceLookupOfflineFmt, err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewBuffer(payload))
	if err != nil {
		s.feedback.Announce(fmt.Sprintf(constant.AnnounceLookupOfflineFmt, err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("lookup", "Position service unreachable", map[string]interface{}{"error": err.Error()})
		s.feedback.Announce(fmt.Sprintf(constant.AnnounceLookupOfflineFmt, err))
		return false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.feedback.Announce(fmt.Sprintf(constant.AnnounceLookupOfflineFmt, err))
		return false
	}

	var data dto.PositionResponse
	if err := json.Unmarshal(body, &data); err != nil {
		s.feedback.Announce(fmt.Sprintf(constant.AnnounceLookupOfflineFmt, err))
		return false
	}

	var responseText string
	found := false

	switch {
	case resp.StatusCode != http.StatusOK:
		errMsg := data.Error
		if errMsg == "" {
			errMsg = "an unknown error occurred"
		}
		responseText = fmt.Sprintf(constant.AnnounceLookupErrorFmt, errMsg, productName)
	case data.Error != "":
		responseText = fmt.Sprintf(constant.AnnounceNotInDatabaseFmt, productName)
	default:
		responseText = fmt.Sprintf(constant.AnnounceLocationFmt,
			productName, intOrUnknown(data.PositionInRow), intOrUnknown(data.RowFromTop))
		s.cache.Set(key, responseText, cache.DefaultExpiration)
		found = true
	}

	s.logger.Info("lookup", "Database response", map[string]interface{}{
		"item":     productName,
		"response": responseText,
	})
	s.feedback.Announce(responseText)

	return found
}

func intOrUnknown(v *int) string {
	if v == nil {
		return "unknown"
	}
	return strconv.Itoa(*v)
}
