// db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	"github.com/dev-mohitbeniwal/backoffice/model"
)

var (
	RedisClient   *redis.Client
	encryptionKey []byte
)

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	encryptionKey = []byte(viper.GetString("redis.encryptionKey"))
	if len(encryptionKey) == 0 {
		sum := sha256.Sum256([]byte(viper.GetString("auth.jwtSecret")))
		encryptionKey = sum[:]
	}
	if len(encryptionKey) != 32 {
		return fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// Verification codes are stored encrypted since they grant a session.
func CacheVerification(ctx context.Context, token string, verification *model.Verification, ttl time.Duration) error {
	verificationJSON, err := json.Marshal(verification)
	if err != nil {
		return fmt.Errorf("failed to marshal verification: %w", err)
	}

	encrypted, err := encrypt(verificationJSON)
	if err != nil {
		return fmt.Errorf("failed to encrypt verification: %w", err)
	}

	key := fmt.Sprintf("verification:%s", token)
	err = RedisClient.Set(ctx, key, base64.StdEncoding.EncodeToString(encrypted), ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to cache verification: %w", err)
	}

	logger.Debug("Verification cached successfully", zap.String("userID", verification.UserID))
	return nil
}

func GetCachedVerification(ctx context.Context, token string) (*model.Verification, error) {
	key := fmt.Sprintf("verification:%s", token)
	encryptedStr, err := RedisClient.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		logger.Debug("Verification not found in cache")
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get verification from cache: %w", err)
	}

	encrypted, err := base64.StdEncoding.DecodeString(encryptedStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode verification: %w", err)
	}

	verificationJSON, err := decrypt(encrypted)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt verification: %w", err)
	}

	var verification model.Verification
	if err := json.Unmarshal(verificationJSON, &verification); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verification: %w", err)
	}

	return &verification, nil
}

func verificationAttemptsKey(token string) string {
	return fmt.Sprintf("verification:%s:attempts", token)
}

// IncrementVerificationAttempts counts a wrong code against token. The counter expires with
// the verification it guards; later increments do not extend it.
func IncrementVerificationAttempts(ctx context.Context, token string, ttl time.Duration) (int64, error) {
	key := verificationAttemptsKey(token)
	pipe := RedisClient.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to count verification attempt: %w", err)
	}
	return incr.Val(), nil
}

func DeleteCachedVerification(ctx context.Context, token string) error {
	key := fmt.Sprintf("verification:%s", token)
	if err := RedisClient.Del(ctx, key, verificationAttemptsKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete verification from cache: %w", err)
	}
	return nil
}

func CacheSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	key := fmt.Sprintf("session:%s", sessionID)
	if err := RedisClient.Set(ctx, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache session: %w", err)
	}
	logger.Debug("Session cached successfully", zap.String("userID", userID))
	return nil
}

func GetCachedSession(ctx context.Context, sessionID string) (string, error) {
	key := fmt.Sprintf("session:%s", sessionID)
	userID, err := RedisClient.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", echo_errors.ErrSessionNotFound
	} else if err != nil {
		return "", fmt.Errorf("failed to get session from cache: %w", err)
	}
	return userID, nil
}

func DeleteCachedSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf("session:%s", sessionID)
	if err := RedisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete session from cache: %w", err)
	}
	logger.Debug("Session deleted from cache")
	return nil
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
