package dto

// LikeStatusRequestDTO 는 게시글/댓글 반응 변경 요청 본문이다.
type LikeStatusRequestDTO struct {
	LikeStatus string `json:"likeStatus" binding:"required,oneof=None Like Dislike"`
}

type CommentRequestDTO struct {
	Content string `json:"content" binding:"required,min=20,max=300"`
}

// BanUserRequestDTO 는 블로거가 자신의 블로그에서 사용자를 차단/해제할 때 쓴다.
type BanUserRequestDTO struct {
	IsBanned  bool   `json:"isBanned"`
	BanReason string `json:"banReason" binding:"required,min=20"`
	BlogID    string `json:"blogId" binding:"required"`
}

// BanBlogRequestDTO 는 super-admin 의 블로그 차단 요청이다.
type BanBlogRequestDTO struct {
	IsBanned bool `json:"isBanned"`
}

// BanUserBySARequestDTO 는 super-admin 의 계정 단위 사용자 차단 요청이다.
type BanUserBySARequestDTO struct {
	IsBanned  bool   `json:"isBanned"`
	BanReason string `json:"banReason" binding:"required,min=20"`
}
