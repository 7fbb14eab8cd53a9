package shopsight

// Social media platforms recognized by handle extraction.
const (
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformTwitter   = "twitter"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformLinkedIn  = "linkedin"
	PlatformPinterest = "pinterest"
)

// SocialHandle represents a social media handle found in page text.
//
// Extraction does not deduplicate across platforms or patterns: a bare
// "@name" mention is attributed to every platform whose patterns match it,
// so consumers must tolerate duplicates. FollowersCount is never set by
// this pipeline.
type SocialHandle struct {
	Platform       string `json:"platform"`
	Handle         string `json:"handle"`
	URL            string `json:"url"`
	FollowersCount *int   `json:"followersCount,omitempty"`
}
