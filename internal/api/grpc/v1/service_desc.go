package v1

import (
	"context"

	"google.golang.org/grpc"
)

// Service and method names
const (
	NewsServiceName = "news.v1.NewsService"
	AuthServiceName = "news.v1.AuthService"

	NewsService_CreateArticle_FullMethodName = "/news.v1.NewsService/CreateArticle"
	NewsService_GetArticle_FullMethodName    = "/news.v1.NewsService/GetArticle"
	NewsService_GetArticles_FullMethodName   = "/news.v1.NewsService/GetArticles"
	NewsService_UpdateArticle_FullMethodName = "/news.v1.NewsService/UpdateArticle"
	NewsService_DeleteArticle_FullMethodName = "/news.v1.NewsService/DeleteArticle"
	NewsService_AddComment_FullMethodName    = "/news.v1.NewsService/AddComment"
	NewsService_GetComments_FullMethodName   = "/news.v1.NewsService/GetComments"
	NewsService_LikeArticle_FullMethodName   = "/news.v1.NewsService/LikeArticle"
	NewsService_UnlikeArticle_FullMethodName = "/news.v1.NewsService/UnlikeArticle"

	AuthService_SignUp_FullMethodName  = "/news.v1.AuthService/SignUp"
	AuthService_SignIn_FullMethodName  = "/news.v1.AuthService/SignIn"
	AuthService_SignOut_FullMethodName = "/news.v1.AuthService/SignOut"
)

// NewsServiceServer is the server API for the news.v1.NewsService service
type NewsServiceServer interface {
	CreateArticle(context.Context, *CreateArticleRequest) (*ArticleIDResponse, error)
	GetArticle(context.Context, *ArticleIDRequest) (*Article, error)
	GetArticles(context.Context, *GetArticlesRequest) (*ArticlesResponse, error)
	UpdateArticle(context.Context, *UpdateArticleRequest) (*Empty, error)
	DeleteArticle(context.Context, *ArticleIDRequest) (*Empty, error)
	AddComment(context.Context, *AddCommentRequest) (*CommentIDResponse, error)
	GetComments(context.Context, *ArticleIDRequest) (*CommentsResponse, error)
	LikeArticle(context.Context, *ArticleIDRequest) (*LikesResponse, error)
	UnlikeArticle(context.Context, *ArticleIDRequest) (*LikesResponse, error)
}

// AuthServiceServer is the server API for the news.v1.AuthService service
type AuthServiceServer interface {
	SignUp(context.Context, *CredentialsRequest) (*SessionResponse, error)
	SignIn(context.Context, *CredentialsRequest) (*SessionResponse, error)
	SignOut(context.Context, *Empty) (*Empty, error)
}

// unaryHandler adapts a typed server method to a grpc.MethodHandler
func unaryHandler[S any, Req any, Resp any](fullMethod string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// NewsService_ServiceDesc is the grpc.ServiceDesc for the news.v1.NewsService service
var NewsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: NewsServiceName,
	HandlerType: (*NewsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateArticle", Handler: unaryHandler(NewsService_CreateArticle_FullMethodName, NewsServiceServer.CreateArticle)},
		{MethodName: "GetArticle", Handler: unaryHandler(NewsService_GetArticle_FullMethodName, NewsServiceServer.GetArticle)},
		{MethodName: "GetArticles", Handler: unaryHandler(NewsService_GetArticles_FullMethodName, NewsServiceServer.GetArticles)},
		{MethodName: "UpdateArticle", Handler: unaryHandler(NewsService_UpdateArticle_FullMethodName, NewsServiceServer.UpdateArticle)},
		{MethodName: "DeleteArticle", Handler: unaryHandler(NewsService_DeleteArticle_FullMethodName, NewsServiceServer.DeleteArticle)},
		{MethodName: "AddComment", Handler: unaryHandler(NewsService_AddComment_FullMethodName, NewsServiceServer.AddComment)},
		{MethodName: "GetComments", Handler: unaryHandler(NewsService_GetComments_FullMethodName, NewsServiceServer.GetComments)},
		{MethodName: "LikeArticle", Handler: unaryHandler(NewsService_LikeArticle_FullMethodName, NewsServiceServer.LikeArticle)},
		{MethodName: "UnlikeArticle", Handler: unaryHandler(NewsService_UnlikeArticle_FullMethodName, NewsServiceServer.UnlikeArticle)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "news/v1/news.proto",
}

// AuthService_ServiceDesc is the grpc.ServiceDesc for the news.v1.AuthService service
var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AuthServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SignUp", Handler: unaryHandler(AuthService_SignUp_FullMethodName, AuthServiceServer.SignUp)},
		{MethodName: "SignIn", Handler: unaryHandler(AuthService_SignIn_FullMethodName, AuthServiceServer.SignIn)},
		{MethodName: "SignOut", Handler: unaryHandler(AuthService_SignOut_FullMethodName, AuthServiceServer.SignOut)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "news/v1/auth.proto",
}

// RegisterNewsServiceServer registers srv on s
func RegisterNewsServiceServer(s grpc.ServiceRegistrar, srv NewsServiceServer) {
	s.RegisterService(&NewsService_ServiceDesc, srv)
}

// RegisterAuthServiceServer registers srv on s
func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthService_ServiceDesc, srv)
}
