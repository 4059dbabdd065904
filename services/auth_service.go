package services

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gin-marketplace/constants"
	"gin-marketplace/idgen"
	"gin-marketplace/models"
	"gin-marketplace/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenExpiry 発行したトークンの有効期間。
// 失効リストは持たないため、ログアウトしても期限までトークンは有効なまま
const TokenExpiry = 7 * 24 * time.Hour

// Identity 検証済みトークンから取り出した本人情報
type Identity struct {
	UserID string
	Role   string
}

type IAuthService interface {
	Register(email string, password string, role string) (*models.User, string, error)
	Login(email string, password string) (*models.User, string, error)
	VerifyToken(tokenString string) (*Identity, error)
	GetUser(userID string) (*models.User, error)
}

type AuthService struct {
	repository repositories.IAuthRepository
}

func NewAuthService(repository repositories.IAuthRepository) IAuthService {
	return &AuthService{repository: repository}
}

func (s *AuthService) Register(email string, password string, role string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrInvalidInput
	}
	if role == "" {
		role = constants.RoleUser
	}
	if !constants.ValidRole(role) {
		return nil, "", ErrInvalidInput
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		ID:           idgen.Generate(constants.UserIDLength),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}
	if err := s.repository.CreateUser(user); err != nil {
		// メールの一意制約はストレージ層で保証される。
		// 同時に同じメールで登録しても成功するのは必ず1件だけ
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(err.Error(), "duplicate") ||
			strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, "", ErrDuplicateEmail
		}
		return nil, "", err
	}

	created, err := s.repository.FindUserByEmail(email)
	if err != nil {
		return nil, "", err
	}

	token, err := CreateToken(created.ID, created.Role)
	if err != nil {
		return nil, "", err
	}
	return created, *token, nil
}

func (s *AuthService) Login(email string, password string) (*models.User, string, error) {
	// 「メールが存在しない」と「パスワードが違う」は区別せず同じエラーを返す
	foundUser, err := s.repository.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := CreateToken(foundUser.ID, foundUser.Role)
	if err != nil {
		return nil, "", err
	}
	return foundUser, *token, nil
}

func CreateToken(userID string, role string) (*string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(TokenExpiry).Unix(),
	})

	tokenString, err := token.SignedString([]byte(os.Getenv("SECRET_KEY")))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

// VerifyToken トークンを検証して本人情報を取り出す。
// サーバー側にセッションは持たず、署名と有効期限だけで判断する
func (s *AuthService) VerifyToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnauthenticated
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return nil, ErrUnauthenticated
	}
	role, ok := claims["role"].(string)
	if !ok || !constants.ValidRole(role) {
		return nil, ErrUnauthenticated
	}

	return &Identity{UserID: userID, Role: role}, nil
}

func (s *AuthService) GetUser(userID string) (*models.User, error) {
	return s.repository.FindUserByID(userID)
}
