package commands

import (
	"fmt"

	grpcv1 "github.com/MGTheTrain/news-api/internal/api/grpc/v1"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

// ArticleCommandHandler calls news.v1.NewsService
type ArticleCommandHandler struct{}

// withClient dials --addr and runs fn against a NewsService client
func withClient(cmd *cobra.Command, fn func(client *grpcv1.NewsServiceClient) (interface{}, error)) error {
	conn, err := dial(cmd)
	if err != nil {
		return err
	}
	defer func(conn *grpc.ClientConn) { _ = conn.Close() }(conn)

	resp, err := fn(grpcv1.NewNewsServiceClient(conn))
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), resp)
}

func articleIDFlag(cmd *cobra.Command) (int64, error) {
	id, err := cmd.Flags().GetInt64("id")
	if err != nil {
		return 0, fmt.Errorf("invalid id flag: %w", err)
	}
	return id, nil
}

// ListArticlesCmd prints a page of articles
func (h *ArticleCommandHandler) ListArticlesCmd(cmd *cobra.Command, _ []string) error {
	lastTimestamp, err := cmd.Flags().GetString("last-timestamp")
	if err != nil {
		return fmt.Errorf("invalid last-timestamp flag: %w", err)
	}
	pageSize, err := cmd.Flags().GetInt32("page-size")
	if err != nil {
		return fmt.Errorf("invalid page-size flag: %w", err)
	}

	return withClient(cmd, func(client *grpcv1.NewsServiceClient) (interface{}, error) {
		return client.GetArticles(cmd.Context(), &grpcv1.GetArticlesRequest{LastTimestamp: lastTimestamp, PageSize: pageSize})
	})
}

// GetArticleCmd prints a single article
func (h *ArticleCommandHandler) GetArticleCmd(cmd *cobra.Command, _ []string) error {
	id, err := articleIDFlag(cmd)
	if err != nil {
		return err
	}

	return withClient(cmd, func(client *grpcv1.NewsServiceClient) (interface{}, error) {
		return client.GetArticle(cmd.Context(), &grpcv1.ArticleIDRequest{ArticleID: id})
	})
}

// CreateArticleCmd creates an article as the signed in user
func (h *ArticleCommandHandler) CreateArticleCmd(cmd *cobra.Command, _ []string) error {
	title, _ := cmd.Flags().GetString("title")
	content, _ := cmd.Flags().GetString("content")
	tags, err := cmd.Flags().GetStringSlice("tags")
	if err != nil {
		return fmt.Errorf("invalid tags flag: %w", err)
	}

	ctx, err := authorized(cmd)
	if err != nil {
		return err
	}

	return withClient(cmd, func(client *grpcv1.NewsServiceClient) (interface{}, error) {
		return client.CreateArticle(ctx, &grpcv1.CreateArticleRequest{Title: title, Content: content, Tags: tags})
	})
}

// UpdateArticleCmd replaces title, content and tags of an article
func (h *ArticleCommandHandler) UpdateArticleCmd(cmd *cobra.Command, _ []string) error {
	id, err := articleIDFlag(cmd)
	if err != nil {
		return err
	}
	title, _ := cmd.Flags().GetString("title")
	content, _ := cmd.Flags().GetString("content")
	tags, err := cmd.Flags().GetStringSlice("tags")
	if err != nil {
		return fmt.Errorf("invalid tags flag: %w", err)
	}

	ctx, err := authorized(cmd)
	if err != nil {
		return err
	}

	return withClient(cmd, func(client *grpcv1.NewsServiceClient) (interface{}, error) {
		return client.UpdateArticle(ctx, &grpcv1.UpdateArticleRequest{ArticleID: id, Title: title, Content: content, Tags: tags})
	})
}

// DeleteArticleCmd deletes an article owned by the signed in user
func (h *ArticleCommandHandler) DeleteArticleCmd(cmd *cobra.Command, _ []string) error {
	id, err := articleIDFlag(cmd)
	if err != nil {
		return err
	}
	ctx, err := authorized(cmd)
	if err != nil {
		return err
	}

	return withClient(cmd, func(client *grpcv1.NewsServiceClient) (interface{}, error) {
		return client.DeleteArticle(ctx, &grpcv1.ArticleIDRequest{ArticleID: id})
	})
}

// CommentCmd adds a comment, or a reply when --parent is set
func (h *ArticleCommandHandler) CommentCmd(cmd *cobra.Command, _ []string) error {
	id, err := articleIDFlag(cmd)
	if err != nil {
		return err
	}
	content, _ := cmd.Flags().GetString("content")
	parent, err := cmd.Flags().GetInt64("parent")
	if err != nil {
		return fmt.Errorf("invalid parent flag: %w", err)
	}

	req := &grpcv1.AddCommentRequest{ArticleID: id, Content: content}
	if parent > 0 {
		req.ParentID = &parent
	}

	ctx, err := authorized(cmd)
	if err != nil {
		return err
	}

	return withClient(cmd, func(client *grpcv1.NewsServiceClient) (interface{}, error) {
		return client.AddComment(ctx, req)
	})
}

// CommentsCmd prints the comment tree of an article
func (h *ArticleCommandHandler) CommentsCmd(cmd *cobra.Command, _ []string) error {
	id, err := articleIDFlag(cmd)
	if err != nil {
		return err
	}

	return withClient(cmd, func(client *grpcv1.NewsServiceClient) (interface{}, error) {
		return client.GetComments(cmd.Context(), &grpcv1.ArticleIDRequest{ArticleID: id})
	})
}

// LikeCmd likes an article, or withdraws the like with --undo
func (h *ArticleCommandHandler) LikeCmd(cmd *cobra.Command, _ []string) error {
	id, err := articleIDFlag(cmd)
	if err != nil {
		return err
	}
	undo, _ := cmd.Flags().GetBool("undo")

	ctx, err := authorized(cmd)
	if err != nil {
		return err
	}

	return withClient(cmd, func(client *grpcv1.NewsServiceClient) (interface{}, error) {
		if undo {
			return client.UnlikeArticle(ctx, &grpcv1.ArticleIDRequest{ArticleID: id})
		}
		return client.LikeArticle(ctx, &grpcv1.ArticleIDRequest{ArticleID: id})
	})
}

// InitArticleCommands registers the article, comment and like client commands
func InitArticleCommands(rootCmd *cobra.Command) error {
	handler := &ArticleCommandHandler{}

	var listCmd = &cobra.Command{
		Use:   "list-articles",
		Short: "List articles, newest first",
		RunE:  handler.ListArticlesCmd,
	}
	addClientFlags(listCmd, false)
	listCmd.Flags().String("last-timestamp", "", "Only list articles created before this timestamp")
	listCmd.Flags().Int32("page-size", 0, "Number of articles per page")
	rootCmd.AddCommand(listCmd)

	var getCmd = &cobra.Command{
		Use:   "get-article",
		Short: "Show a single article",
		RunE:  handler.GetArticleCmd,
	}
	addClientFlags(getCmd, false)
	getCmd.Flags().Int64("id", 0, "Article ID")
	rootCmd.AddCommand(getCmd)

	var createCmd = &cobra.Command{
		Use:   "create-article",
		Short: "Create an article",
		RunE:  handler.CreateArticleCmd,
	}
	var updateCmd = &cobra.Command{
		Use:   "update-article",
		Short: "Replace an article",
		RunE:  handler.UpdateArticleCmd,
	}
	updateCmd.Flags().Int64("id", 0, "Article ID")
	for _, c := range []*cobra.Command{createCmd, updateCmd} {
		addClientFlags(c, true)
		c.Flags().String("title", "", "Article title")
		c.Flags().String("content", "", "Article content")
		c.Flags().StringSlice("tags", nil, "Comma separated tag names")
		rootCmd.AddCommand(c)
	}

	var deleteCmd = &cobra.Command{
		Use:   "delete-article",
		Short: "Delete an article",
		RunE:  handler.DeleteArticleCmd,
	}
	addClientFlags(deleteCmd, true)
	deleteCmd.Flags().Int64("id", 0, "Article ID")
	rootCmd.AddCommand(deleteCmd)

	var commentCmd = &cobra.Command{
		Use:   "comment",
		Short: "Comment on an article",
		RunE:  handler.CommentCmd,
	}
	addClientFlags(commentCmd, true)
	commentCmd.Flags().Int64("id", 0, "Article ID")
	commentCmd.Flags().Int64("parent", 0, "ID of the comment to reply to")
	commentCmd.Flags().String("content", "", "Comment text")
	rootCmd.AddCommand(commentCmd)

	var commentsCmd = &cobra.Command{
		Use:   "comments",
		Short: "Show the comment tree of an article",
		RunE:  handler.CommentsCmd,
	}
	addClientFlags(commentsCmd, false)
	commentsCmd.Flags().Int64("id", 0, "Article ID")
	rootCmd.AddCommand(commentsCmd)

	var likeCmd = &cobra.Command{
		Use:   "like",
		Short: "Like an article",
		RunE:  handler.LikeCmd,
	}
	addClientFlags(likeCmd, true)
	likeCmd.Flags().Int64("id", 0, "Article ID")
	likeCmd.Flags().Bool("undo", false, "Withdraw the like instead")
	rootCmd.AddCommand(likeCmd)

	return nil
}
