package validation

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/develop-y-minami/v-spa/internal/models"
)

// Mode selects the per-operation rule set. ModeEdit additionally excludes the
// record under edit from uniqueness checks. No edit endpoint is routed today,
// but the capability is part of the validator contract.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// UserPayload is the typed result of a successful validation run.
type UserPayload struct {
	Username   string
	Name       string
	Email      *string
	Password   string
	RoleCodeID uint
}

// UserValidator applies the ordered per-field rules for user writes. Its only
// database access is read-only uniqueness counting; the unique constraint in
// the schema remains the source of truth under concurrency.
type UserValidator struct {
	db *gorm.DB
}

func NewUserValidator(db *gorm.DB) *UserValidator {
	return &UserValidator{db: db}
}

// Validate checks the raw field map and returns either a typed payload or a
// field→messages map. The returned error is reserved for infrastructure
// failures (a broken uniqueness query), never for user input.
func (v *UserValidator) Validate(ctx context.Context, mode Mode, excludeID uint, input map[string]any) (*UserPayload, Errors, error) {
	errs := Errors{}
	payload := &UserPayload{}

	// username: required / string / max / charset / unique
	if username, ok := v.checkString(errs, input, "username",
		"ユーザー名は必須です。",
		"ユーザー名は文字列である必要があります。"); ok {
		if runeLen(username) > UsernameMaxLength {
			errs.add("username", fmt.Sprintf("ユーザー名は最大 %d 文字です。", UsernameMaxLength))
		}
		if !AlphanumericSymbol(username) {
			errs.add("username", alphanumericSymbolMessage("username"))
		}
		if len(errs["username"]) == 0 {
			exclude := uint(0)
			if mode == ModeEdit {
				exclude = excludeID
			}
			taken, err := v.taken(ctx, "username", username, exclude)
			if err != nil {
				return nil, nil, err
			}
			if taken {
				errs.add("username", "このユーザー名は既に登録されています。")
			}
		}
		payload.Username = username
	}

	// name: required / string / max
	if name, ok := v.checkString(errs, input, "name",
		"名前は必須です。",
		"名前は文字列である必要があります。"); ok {
		if runeLen(name) > NameMaxLength {
			errs.add("name", fmt.Sprintf("名前は最大 %d 文字です。", NameMaxLength))
		}
		payload.Name = name
	}

	// email: nullable / string / email / max / unique
	if !isBlank(input["email"]) {
		email, ok := asString(input["email"])
		if !ok {
			errs.add("email", "メールアドレスは文字列である必要があります。")
		} else {
			if !EmailFormat(email) {
				errs.add("email", "メールアドレスは正しい形式で入力してください。")
			}
			if runeLen(email) > EmailMaxLength {
				errs.add("email", fmt.Sprintf("メールアドレスは最大 %d 文字です。", EmailMaxLength))
			}
			if len(errs["email"]) == 0 {
				exclude := uint(0)
				if mode == ModeEdit {
					exclude = excludeID
				}
				taken, err := v.taken(ctx, "email", email, exclude)
				if err != nil {
					return nil, nil, err
				}
				if taken {
					errs.add("email", "このメールアドレスは既に登録されています。")
				}
			}
			payload.Email = &email
		}
	}

	// password: required / string / min / max / charset
	if password, ok := v.checkString(errs, input, "password",
		"パスワードは必須です。",
		"パスワードは文字列である必要があります。"); ok {
		if runeLen(password) < PasswordMinLength {
			errs.add("password", fmt.Sprintf("パスワードは最低 %d 文字である必要があります。", PasswordMinLength))
		}
		if runeLen(password) > PasswordMaxLength {
			errs.add("password", fmt.Sprintf("パスワードは最大 %d 文字です。", PasswordMaxLength))
		}
		if !AlphanumericSymbol(password) {
			errs.add("password", alphanumericSymbolMessage("password"))
		}
		payload.Password = password
	}

	// role_code_id: required / integer. These two kept their stock English
	// messages in the original screens; changing them would alter the UI.
	if isBlank(input["role_code_id"]) {
		errs.add("role_code_id", "The role code id field is required.")
	} else if id, ok := asUint(input["role_code_id"]); ok {
		payload.RoleCodeID = id
	} else {
		errs.add("role_code_id", "The role code id must be an integer.")
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}
	return payload, nil, nil
}

// checkString handles the shared required/string prefix of a field's rule
// list. A blank value reports only the required failure, matching how the
// remaining rules are skipped for empty input.
func (v *UserValidator) checkString(errs Errors, input map[string]any, field, requiredMsg, stringMsg string) (string, bool) {
	raw, present := input[field]
	if !present || isBlank(raw) {
		errs.add(field, requiredMsg)
		return "", false
	}
	s, ok := asString(raw)
	if !ok {
		errs.add(field, stringMsg)
		return "", false
	}
	return s, true
}

func (v *UserValidator) taken(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	query := v.db.WithContext(ctx).Model(&models.User{}).Where(column+" = ?", value)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("validation: uniqueness check on %s: %w", column, err)
	}
	return count > 0, nil
}

func isBlank(raw any) bool {
	if raw == nil {
		return true
	}
	s, ok := raw.(string)
	return ok && s == ""
}

func asString(raw any) (string, bool) {
	s, ok := raw.(string)
	return s, ok
}

// asUint accepts the numeric shapes a decoded JSON body can produce.
func asUint(raw any) (uint, bool) {
	switch n := raw.(type) {
	case float64:
		if n < 0 || n != math.Trunc(n) {
			return 0, false
		}
		return uint(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil || i < 0 {
			return 0, false
		}
		return uint(i), true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint(n), true
	default:
		return 0, false
	}
}
