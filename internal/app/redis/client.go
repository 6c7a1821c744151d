package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"backend/internal/app/authz"
	"backend/internal/app/config"

	"github.com/go-redis/redis/v8"
)

const servicePrefix = "admin-api."

const (
	jwtPrefix       = servicePrefix + "jwt."
	cataloguePrefix = servicePrefix + "perm-catalogue."
)

// TTL кэша каталога прав. Каталог инвалидируется явно при изменении
// грантов роли, TTL - страховка от рассинхронизации между инстансами.
const catalogueTTL = 5 * time.Minute

type Client struct {
	cfg    config.RedisConfig
	client *redis.Client
}

func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Username:    cfg.User,
		Password:    cfg.Password,
		DB:          0,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{cfg: cfg, client: client}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func getJWTKey(jwtStr string) string {
	return jwtPrefix + jwtStr
}

func getCatalogueKey(roleID uint) string {
	return fmt.Sprintf("%s%d", cataloguePrefix, roleID)
}

// WriteJWTToBlacklist добавляет токен в блэклист до истечения его TTL
func (c *Client) WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error {
	return c.client.Set(ctx, getJWTKey(jwtStr), true, jwtTTL).Err()
}

// CheckJWTInBlacklist возвращает nil, если токен найден в блэклисте
func (c *Client) CheckJWTInBlacklist(ctx context.Context, jwtStr string) error {
	return c.client.Get(ctx, getJWTKey(jwtStr)).Err()
}

// WriteCatalogue кэширует каталог прав роли
func (c *Client) WriteCatalogue(ctx context.Context, roleID uint, catalogue authz.Catalogue) error {
	data, err := json.Marshal(catalogue)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, getCatalogueKey(roleID), data, catalogueTTL).Err()
}

// ReadCatalogue читает каталог прав роли из кэша
func (c *Client) ReadCatalogue(ctx context.Context, roleID uint) (authz.Catalogue, error) {
	data, err := c.client.Get(ctx, getCatalogueKey(roleID)).Bytes()
	if err != nil {
		return nil, err
	}

	var catalogue authz.Catalogue
	if err := json.Unmarshal(data, &catalogue); err != nil {
		return nil, err
	}
	return catalogue, nil
}

// DropCatalogue сбрасывает кэш каталога (вызывается при изменении грантов роли)
func (c *Client) DropCatalogue(ctx context.Context, roleID uint) error {
	return c.client.Del(ctx, getCatalogueKey(roleID)).Err()
}
