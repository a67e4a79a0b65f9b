// Package config 提供客户端的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// MainConfig 主配置，包含应用基本信息
type MainConfig struct {
	AppName string `toml:"appName"` // 应用名称，用于日志标识等
	Lang    string `toml:"lang"`    // 错误提示语言，"zh" 或 "en"
}

// ServerConfig 后端服务配置
type ServerConfig struct {
	BaseURL        string        `toml:"baseURL"`        // REST 接口基础地址，如 "https://chat.example.com"
	WsURL          string        `toml:"wsURL"`          // WebSocket 地址，如 "wss://chat.example.com/ws"
	RequestTimeout time.Duration `toml:"requestTimeout"` // 单次请求超时时间，0 表示使用默认值
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// RealtimeConfig 实时通道配置
type RealtimeConfig struct {
	MaxRetries int           `toml:"maxRetries"` // 断线重连最大次数
	RetryDelay time.Duration `toml:"retryDelay"` // 重连间隔（固定延迟，不做退避）
}

// AuthConfig 本地凭证配置
type AuthConfig struct {
	TokenFile string `toml:"tokenFile"` // access/refresh token 的本地存储文件路径
}

// OtpConfig 第三方短信验证码服务配置
// 客户端只与该服务交换手机号与验证码，不持有服务商密钥
type OtpConfig struct {
	ProviderURL string `toml:"providerURL"` // OTP 服务地址
	AppKey      string `toml:"appKey"`      // 应用标识（非密钥）
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig     `toml:"mainConfig"`     // 主配置
	ServerConfig   `toml:"serverConfig"`   // 后端服务配置
	LogConfig      `toml:"logConfig"`      // 日志配置
	RealtimeConfig `toml:"realtimeConfig"` // 实时通道配置
	AuthConfig     `toml:"authConfig"`     // 本地凭证配置
	OtpConfig      `toml:"otpConfig"`      // 短信验证码配置
}

// config 全局配置单例，延迟加载
var config *Config

// LoadConfig 从多个候选路径加载配置文件
// 按顺序尝试加载，找到第一个可用的配置文件即停止
func LoadConfig() error {
	if config == nil {
		config = new(Config)
	}
	// 候选配置文件路径（优先加载本地配置）
	paths := []string{
		"configs/config_local.toml",       // 本地开发配置（优先）
		"configs/config.toml",             // 默认配置
		"../../configs/config_local.toml", // 从子目录运行时的路径
		"../../configs/config.toml",       // 从子目录运行时的路径
	}

	// 依次尝试加载配置文件
	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时会自动加载配置文件
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig() // 忽略加载错误，使用默认值
	}
	return config
}
