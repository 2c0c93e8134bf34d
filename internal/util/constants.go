package util

const TimeFormat = "2006-01-02 15:04:05"

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const MimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// gin 上下文中保存 JWT claims 的键
const ContextUserKey = "user"
