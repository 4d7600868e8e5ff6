package services

import (
	"errors"
	"strings"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/middleware"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type PasswordService struct {
	db     *gorm.DB
	log    *zap.Logger
	tokens *middleware.OperatorTokens
}

// NewPasswordService creates a new instance of PasswordService. tokens may be
// nil, in which case no operator token is handed out.
func NewPasswordService(db *gorm.DB, log *zap.Logger, tokens *middleware.OperatorTokens) *PasswordService {
	return &PasswordService{db: db, log: log, tokens: tokens}
}

// IsBcryptHash reports whether a stored password is a bcrypt hash
func IsBcryptHash(stored string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(stored, prefix) {
			return true
		}
	}
	return false
}

// HashPassword hashes a role password for storage
func HashPassword(pass string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares pass against the stored password of role
func (s *PasswordService) CheckPassword(req models.PasswordCheckRequest) (*models.PasswordCheckResponse, error) {
	if req.Pass == "" || (req.Type != models.RoleOperator && req.Type != models.RoleStats) {
		return nil, ValidationError("invalid_request")
	}

	var row models.PasswordModel
	if err := s.db.Order("id").First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &AppError{Kind: KindInternal, Message: "no_passwords_found"}
		}
		return nil, StorageError("no se pudieron leer las contraseñas", err)
	}

	stored := row.Operador
	if req.Type == models.RoleStats {
		stored = row.Estadisticas
	}

	var valid bool
	if IsBcryptHash(stored) {
		valid = bcrypt.CompareHashAndPassword([]byte(stored), []byte(req.Pass)) == nil
	} else {
		// TODO: drop plaintext comparison once every deployment has run the seed command
		s.log.Warn("role password stored in plain text, run the seed command to hash it",
			zap.String("role", req.Type))
		valid = stored != "" && stored == req.Pass
	}

	resp := &models.PasswordCheckResponse{Valid: valid}
	if valid && req.Type == models.RoleOperator && s.tokens != nil {
		token, err := s.tokens.Issue(req.Type)
		if err != nil {
			s.log.Error("could not issue role token", zap.String("role", req.Type), zap.Error(err))
		} else {
			resp.Token = token
		}
	}
	return resp, nil
}
