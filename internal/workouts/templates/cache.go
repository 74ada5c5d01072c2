package templates

import (
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const weeksListCacheKey = "weeks::all"

// WeekCache keeps JSON encoded week templates in a freecache cache.
type WeekCache struct {
	cache      *freecache.Cache
	ttlSeconds int
}

func NewWeekCache(sizeMB, ttlSeconds int) *WeekCache {
	megabyte := 1024 * 1024
	return &WeekCache{
		cache:      freecache.NewCache(sizeMB * megabyte),
		ttlSeconds: ttlSeconds,
	}
}

func weekCacheKey(id int) []byte {
	return []byte(fmt.Sprintf("week::%d", id))
}

func (c *WeekCache) Get(id int) (*WeekTemplate, bool) {
	weekBytes, err := c.cache.Get(weekCacheKey(id))
	if err != nil {
		return nil, false
	}
	var week WeekTemplate
	if err := json.Unmarshal(weekBytes, &week); err != nil {
		log.Errorf("failed to unmarshal cached week %d: %s", id, err)
		return nil, false
	}
	return &week, true
}

func (c *WeekCache) Set(week *WeekTemplate) {
	weekBytes, err := json.Marshal(week)
	if err != nil {
		log.Errorf("failed to marshal week %d for cache: %s", week.ID, err)
		return
	}
	if err := c.cache.Set(weekCacheKey(week.ID), weekBytes, c.ttlSeconds); err != nil {
		log.Errorf("failed to cache week %d: %s", week.ID, err)
	}
}

func (c *WeekCache) GetList() ([]WeekTemplate, bool) {
	weeksBytes, err := c.cache.Get([]byte(weeksListCacheKey))
	if err != nil {
		return nil, false
	}
	var weeks []WeekTemplate
	if err := json.Unmarshal(weeksBytes, &weeks); err != nil {
		log.Errorf("failed to unmarshal cached weeks list: %s", err)
		return nil, false
	}
	return weeks, true
}

func (c *WeekCache) SetList(weeks []WeekTemplate) {
	weeksBytes, err := json.Marshal(weeks)
	if err != nil {
		log.Errorf("failed to marshal weeks list for cache: %s", err)
		return
	}
	if err := c.cache.Set([]byte(weeksListCacheKey), weeksBytes, c.ttlSeconds); err != nil {
		log.Errorf("failed to cache weeks list: %s", err)
	}
}

// Clear drops everything. Day changes show up inside week templates, so any
// template mutation invalidates the whole cache.
func (c *WeekCache) Clear() {
	c.cache.Clear()
}

func (c *WeekCache) EntryCount() int64 {
	return c.cache.EntryCount()
}
