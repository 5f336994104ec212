package model

// Platform 社交平台
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
)

// Platforms 全部受支持的平台，顺序即展示顺序
var Platforms = []Platform{PlatformInstagram, PlatformFacebook, PlatformTwitter}

// Valid 是否为受支持的平台
func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformFacebook, PlatformTwitter:
		return true
	}
	return false
}
