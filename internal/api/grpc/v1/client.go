package v1

import (
	"context"

	"google.golang.org/grpc"
)

func invoke[Req any, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// NewsServiceClient is the client API for the news.v1.NewsService service
type NewsServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewNewsServiceClient creates a client on cc
func NewNewsServiceClient(cc grpc.ClientConnInterface) *NewsServiceClient {
	return &NewsServiceClient{cc: cc}
}

func (c *NewsServiceClient) CreateArticle(ctx context.Context, in *CreateArticleRequest, opts ...grpc.CallOption) (*ArticleIDResponse, error) {
	return invoke[CreateArticleRequest, ArticleIDResponse](ctx, c.cc, NewsService_CreateArticle_FullMethodName, in, opts)
}

func (c *NewsServiceClient) GetArticle(ctx context.Context, in *ArticleIDRequest, opts ...grpc.CallOption) (*Article, error) {
	return invoke[ArticleIDRequest, Article](ctx, c.cc, NewsService_GetArticle_FullMethodName, in, opts)
}

func (c *NewsServiceClient) GetArticles(ctx context.Context, in *GetArticlesRequest, opts ...grpc.CallOption) (*ArticlesResponse, error) {
	return invoke[GetArticlesRequest, ArticlesResponse](ctx, c.cc, NewsService_GetArticles_FullMethodName, in, opts)
}

func (c *NewsServiceClient) UpdateArticle(ctx context.Context, in *UpdateArticleRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[UpdateArticleRequest, Empty](ctx, c.cc, NewsService_UpdateArticle_FullMethodName, in, opts)
}

func (c *NewsServiceClient) DeleteArticle(ctx context.Context, in *ArticleIDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[ArticleIDRequest, Empty](ctx, c.cc, NewsService_DeleteArticle_FullMethodName, in, opts)
}

func (c *NewsServiceClient) AddComment(ctx context.Context, in *AddCommentRequest, opts ...grpc.CallOption) (*CommentIDResponse, error) {
	return invoke[AddCommentRequest, CommentIDResponse](ctx, c.cc, NewsService_AddComment_FullMethodName, in, opts)
}

func (c *NewsServiceClient) GetComments(ctx context.Context, in *ArticleIDRequest, opts ...grpc.CallOption) (*CommentsResponse, error) {
	return invoke[ArticleIDRequest, CommentsResponse](ctx, c.cc, NewsService_GetComments_FullMethodName, in, opts)
}

func (c *NewsServiceClient) LikeArticle(ctx context.Context, in *ArticleIDRequest, opts ...grpc.CallOption) (*LikesResponse, error) {
	return invoke[ArticleIDRequest, LikesResponse](ctx, c.cc, NewsService_LikeArticle_FullMethodName, in, opts)
}

func (c *NewsServiceClient) UnlikeArticle(ctx context.Context, in *ArticleIDRequest, opts ...grpc.CallOption) (*LikesResponse, error) {
	return invoke[ArticleIDRequest, LikesResponse](ctx, c.cc, NewsService_UnlikeArticle_FullMethodName, in, opts)
}

// AuthServiceClient is the client API for the news.v1.AuthService service
type AuthServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAuthServiceClient creates a client on cc
func NewAuthServiceClient(cc grpc.ClientConnInterface) *AuthServiceClient {
	return &AuthServiceClient{cc: cc}
}

func (c *AuthServiceClient) SignUp(ctx context.Context, in *CredentialsRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[CredentialsRequest, SessionResponse](ctx, c.cc, AuthService_SignUp_FullMethodName, in, opts)
}

func (c *AuthServiceClient) SignIn(ctx context.Context, in *CredentialsRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[CredentialsRequest, SessionResponse](ctx, c.cc, AuthService_SignIn_FullMethodName, in, opts)
}

func (c *AuthServiceClient) SignOut(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty, Empty](ctx, c.cc, AuthService_SignOut_FullMethodName, in, opts)
}
