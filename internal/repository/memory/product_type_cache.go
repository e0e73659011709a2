package memory

import (
	"time"

	"brandkit-admin-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const productTypeListKey = "product_types:all"

// ProductTypeCache keeps the ordered product type listing in process. Product
// types change rarely and every operator screen loads them.
type ProductTypeCache struct {
	cache *cache.Cache
}

func NewProductTypeCache(ttl time.Duration) *ProductTypeCache {
	return &ProductTypeCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *ProductTypeCache) SaveAll(productTypes []*entity.ProductType) {
	c.cache.Set(productTypeListKey, productTypes, cache.DefaultExpiration)
}

func (c *ProductTypeCache) GetAll() ([]*entity.ProductType, bool) {
	if x, found := c.cache.Get(productTypeListKey); found {
		return x.([]*entity.ProductType), true
	}
	return nil, false
}

func (c *ProductTypeCache) Invalidate() {
	c.cache.Delete(productTypeListKey)
}
