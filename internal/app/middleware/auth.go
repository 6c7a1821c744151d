package middleware

import (
	"backend/internal/app/authz"
	"backend/internal/app/config"
	"backend/internal/app/ds"
	"backend/internal/app/redis"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
)

// Слаг роли администратора - проходит любую проверку прав
const AdminRoleSlug = "admin"

type AuthMiddleware struct {
	RedisClient *redis.Client
	Config      *config.Config
	Repository  *repository.Repository
}

func NewAuthMiddleware(redisClient *redis.Client, cfg *config.Config, repo *repository.Repository) *AuthMiddleware {
	return &AuthMiddleware{
		RedisClient: redisClient,
		Config:      cfg,
		Repository:  repo,
	}
}

// WithAuthCheck middleware для проверки авторизации по JWT
func (am *AuthMiddleware) WithAuthCheck() gin.HandlerFunc {
	return gin.HandlerFunc(func(gCtx *gin.Context) {
		// Проверяем JWT токен из заголовка Authorization
		jwtStr := gCtx.GetHeader("Authorization")
		if jwtStr == "" {
			gCtx.AbortWithStatus(401) // Unauthorized
			return
		}

		// Убираем префикс "Bearer " если он есть
		if len(jwtStr) > 7 && jwtStr[:7] == "Bearer " {
			jwtStr = jwtStr[7:]
		}

		// Проверяем токен в blacklist Redis
		err := am.RedisClient.CheckJWTInBlacklist(gCtx.Request.Context(), jwtStr)
		if err == nil {
			// Токен в blacklist
			gCtx.AbortWithStatus(401)
			return
		}

		// Парсим и проверяем JWT токен
		token, err := am.parseJWTToken(jwtStr)
		if err != nil {
			gCtx.AbortWithStatus(401)
			return
		}

		claims, ok := token.Claims.(*ds.JWTClaims)
		if !ok || !token.Valid {
			gCtx.AbortWithStatus(401)
			return
		}

		// Сохраняем данные пользователя в контексте для последующего использования
		gCtx.Set("userID", claims.UserID)
		gCtx.Set("roleID", claims.RoleID)
		gCtx.Set("roleSlug", claims.RoleSlug)
		gCtx.Set("jwtToken", jwtStr)

		gCtx.Next()
	})
}

// RequirePermission проверяет право роли на маршрут по каталогу прав.
// Ставится ПОСЛЕ WithAuthCheck. Администратор проходит без проверки каталога.
func (am *AuthMiddleware) RequirePermission(route string) gin.HandlerFunc {
	return gin.HandlerFunc(func(gCtx *gin.Context) {
		roleSlug := gCtx.GetString("roleSlug")
		if roleSlug == AdminRoleSlug {
			gCtx.Next()
			return
		}

		roleID := gCtx.GetUint("roleID")
		if roleID == 0 {
			gCtx.AbortWithStatus(403) // Forbidden
			return
		}

		catalogue, err := am.catalogueForRole(gCtx, roleID)
		if err != nil {
			logrus.Errorf("Не удалось получить каталог прав роли %d: %v", roleID, err)
			// Нет каталога - нет доступа
			gCtx.AbortWithStatus(403)
			return
		}

		if !catalogue.HasPermission(route) {
			gCtx.AbortWithStatus(403)
			return
		}

		gCtx.Next()
	})
}

// catalogueForRole берет каталог из Redis, при промахе собирает из БД и кеширует
func (am *AuthMiddleware) catalogueForRole(gCtx *gin.Context, roleID uint) (authz.Catalogue, error) {
	ctx := gCtx.Request.Context()

	catalogue, err := am.RedisClient.ReadCatalogue(ctx, roleID)
	if err == nil {
		return catalogue, nil
	}

	catalogue, err = am.Repository.GetPermissionCatalogue(roleID)
	if err != nil {
		return nil, err
	}

	if cacheErr := am.RedisClient.WriteCatalogue(ctx, roleID, catalogue); cacheErr != nil {
		logrus.Warnf("Каталог прав роли %d не закеширован: %v", roleID, cacheErr)
	}

	return catalogue, nil
}

// parseJWTToken парсит и валидирует JWT токен
func (am *AuthMiddleware) parseJWTToken(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(am.Config.JWT.Token), nil
	})
}
