// Package jwt реализует выпуск и проверку подписанных JWT токенов доступа.
//
// Токен несет email пользователя в claim "sub" и абсолютный момент истечения
// в claim "exp". Подпись выполняется секретным ключом одним из HMAC-алгоритмов.
// Токен подписан, но не зашифрован: содержимое читаемо держателем, поэтому
// ничего секретного в claims не кладется.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Ошибки проверки токена. Для клиента все три означают отказ (401),
// но различимы в логах и тестах.
var (
	// ErrExpiredToken — срок действия токена истек.
	ErrExpiredToken = errors.New("token is expired")
	// ErrInvalidSignature — подпись не соответствует секретному ключу.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrMalformedToken — токен не разбирается или отсутствует claim "sub".
	ErrMalformedToken = errors.New("malformed token")
)

// Maker описывает интерфейс для выпуска и проверки токенов доступа.
type Maker interface {
	// GenerateToken выпускает токен для субъекта (email пользователя).
	GenerateToken(subject string) (string, error)
	// ParseToken проверяет подпись и срок действия, возвращает субъект.
	ParseToken(tokenStr string) (string, error)
}

// MakerImpl реализует интерфейс Maker на основе секретного ключа,
// алгоритма подписи и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string
	method    jwt.SigningMethod
	tokenTTL  time.Duration
	now       func() time.Time // Источник времени, подменяется в тестах
}

// NewJWTMaker создает MakerImpl. Идентификатор алгоритма должен быть
// одним из HMAC-семейства ("HS256", "HS384", "HS512"); пустой или
// неизвестный идентификатор — ошибка конфигурации при старте процесса.
func NewJWTMaker(secretKey, algorithm string, ttl time.Duration) (*MakerImpl, error) {
	const op = "jwt.NewJWTMaker"
	if secretKey == "" {
		return nil, fmt.Errorf("%s: secret key is empty", op)
	}
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("%s: unsupported signing algorithm %q", op, algorithm)
	}
	return &MakerImpl{
		secretKey: secretKey,
		method:    method,
		tokenTTL:  ttl,
		now:       time.Now,
	}, nil
}

// GenerateToken выпускает подписанный токен с субъектом и сроком действия now+TTL.
func (j *MakerImpl) GenerateToken(subject string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(j.now()),
		ExpiresAt: jwt.NewNumericDate(j.now().Add(j.tokenTTL)),
	}
	token := jwt.NewWithClaims(j.method, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken проверяет подпись и срок действия токена, возвращает субъект.
//
// Выдает ErrExpiredToken, ErrInvalidSignature или ErrMalformedToken
// в зависимости от причины отказа.
func (j *MakerImpl) ParseToken(tokenStr string) (string, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", fmt.Errorf("%s: %w", op, ErrExpiredToken)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", fmt.Errorf("%s: %w", op, ErrInvalidSignature)
		default:
			return "", fmt.Errorf("%s: %w", op, ErrMalformedToken)
		}
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("%s: %w", op, ErrMalformedToken)
	}
	return claims.Subject, nil
}
