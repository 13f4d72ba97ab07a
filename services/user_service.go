package services

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/repository"
	"github.com/2605335342/sky-take-out/utils"
)

const wxLoginURL = "https://api.weixin.qq.com/sns/jscode2session"

// UserService handles consumer WeChat login. The exchange endpoint is a
// field so tests can point it at a local stub.
type UserService struct {
	Repo      *repository.UserRepository
	AppID     string
	Secret    string
	LoginURL  string
	client    *http.Client
	jwtSecret string
	jwtTTL    time.Duration
}

func NewUserService(repo *repository.UserRepository, appID, secret, jwtSecret string, ttl time.Duration) *UserService {
	return &UserService{
		Repo:      repo,
		AppID:     appID,
		Secret:    secret,
		LoginURL:  wxLoginURL,
		client:    &http.Client{Timeout: 5 * time.Second},
		jwtSecret: jwtSecret,
		jwtTTL:    ttl,
	}
}

// WxLogin exchanges the mini-program code for an openid, registering the
// user on first sight, and issues a consumer token.
func (s *UserService) WxLogin(code string) (string, *entity.User, error) {
	openid, err := s.getOpenid(code)
	if err != nil {
		return "", nil, err
	}
	if openid == "" {
		return "", nil, ErrLoginFailed
	}

	user, err := s.Repo.GetByOpenID(openid)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		user = &entity.User{OpenID: openid}
		if err := s.Repo.Create(user); err != nil {
			return "", nil, err
		}
	}

	token, err := utils.GenerateToken(user.ID, "user", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *UserService) getOpenid(code string) (string, error) {
	q := url.Values{}
	q.Set("appid", s.AppID)
	q.Set("secret", s.Secret)
	q.Set("js_code", code)
	q.Set("grant_type", "authorization_code")

	res, err := s.client.Get(s.LoginURL + "?" + q.Encode())
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var body struct {
		OpenID  string `json:"openid"`
		ErrCode int    `json:"errcode"`
		ErrMsg  string `json:"errmsg"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.OpenID, nil
}
