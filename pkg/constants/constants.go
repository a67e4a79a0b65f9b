package constants

const (
	CHANNEL_SIZE               = 100   // 通道大小
	FILE_MAX_SIZE              = 50000 // 文件最大大小
	RECONNECT_MAX_ATTEMPTS     = 5     // websocket 重连最大次数
	RECONNECT_DELAY_SECONDS    = 3     // websocket 重连间隔（秒）
	REFRESH_TOKEN_EXPIRY_HOURS = 168   // Refresh Token 有效期（小时），168小时 = 7天
)
