package frontendsession

import (
	"context"
	"strings"
	"time"

	"frontsession/internal/blog"
	"frontsession/internal/locale"
	"frontsession/internal/models"

	"github.com/samber/oops"
)

// CodeCommentsRestricted tags the error returned for anonymous comments
// when they are limited to registered users
const CodeCommentsRestricted = "COMMENTS_RESTRICTED"

const (
	tplsetDotty  = "dotty"
	tplsetMustek = "mustek"
)

// CoreBlogGetPosts makes CommentsActive of every record plugin-aware
func (p *Plugin) CoreBlogGetPosts(ctx context.Context, rs *blog.PostRecords) {
	rs.Extend(func(r *blog.PostRecord) bool {
		return p.commentsActive(ctx, r)
	})
}

func (p *Plugin) commentsActive(ctx context.Context, r *blog.PostRecord) bool {
	option := NewCommentOptions(r, nil)
	if err := p.behaviors.Call(ctx, HookCommentsActive, option); err == nil {
		if active := option.IsActive(); active != nil {
			return *active
		}
	}

	bc := blog.FromContext(ctx)
	if !bc.Settings.Bool(blog.SettingAllowComments) || !r.OpenComment {
		return false
	}
	if ttl := bc.Settings.Int(blog.SettingCommentsTTL); ttl > 0 &&
		time.Since(r.CreatedAt) > time.Duration(ttl)*24*time.Hour {
		return false
	}
	return !p.settings.Bool(SettingLimitComment) || bc.Check()
}

// PublicBeforeCommentCreate applies moderation overrides, refuses anonymous
// comments when they are limited, and replaces the author fields of a
// signed-in visitor by their profile.
func (p *Plugin) PublicBeforeCommentCreate(ctx context.Context, cur *models.Comment) error {
	if cur.PostID == 0 {
		return nil
	}
	rs, err := p.posts.ByID(ctx, cur.PostID)
	if err != nil {
		return err
	}
	post := rs.First()
	if post == nil || !post.OpenComment {
		return nil
	}

	option := NewCommentOptions(post, cur)
	if err := p.behaviors.Call(ctx, HookCommentsActive, option); err != nil {
		return err
	}

	if moderate := option.IsModerate(); moderate != nil {
		if *moderate {
			cur.Status = models.CommentUnpublished
		} else {
			cur.Status = models.CommentPublished
		}
	}

	bc := blog.FromContext(ctx)
	if option.IsActive() == nil && p.settings.Bool(SettingLimitComment) && bc.UserID() == "" {
		p.metrics.commentRejected()
		return oops.
			Code(CodeCommentsRestricted).
			With("post_id", cur.PostID).
			Errorf("%s", locale.T(bc.Lang(), "Comments creation are limited to registered users."))
	}

	if bc.Check() {
		cur.Author = bc.UserInfo("user_cn")
		cur.Email = bc.UserInfo("user_email")
		cur.Site = bc.UserInfo("user_url")
	}
	return nil
}

// PublicHeadContent returns the plugin stylesheet link for dotty themes and,
// for signed-in visitors, a style hiding the comment identity fields.
func (p *Plugin) PublicHeadContent(ctx context.Context) string {
	bc := blog.FromContext(ctx)
	tplset := p.themes.TplSet(bc.Settings.Get(blog.SettingTheme))

	var b strings.Builder
	if !p.settings.Bool(SettingDisableCSS) && tplset == tplsetDotty {
		b.WriteString(`<link rel="stylesheet" href="` + bc.BlogURL + "pf/" + ID + `/css/frontend-dotty.css" type="text/css" media="screen">` + "\n")
	}

	// Selectors depend on the theme markup; unknown themes get the dotty ones.
	if bc.Check() {
		b.WriteString("<!-- FrontendSession special -->\n<style>")
		if tplset == tplsetMustek {
			b.WriteString("#comment-form .field:has(> #c_name), #comment-form .field:has(> #c_mail), #comment-form .field:has(> #c_site), #comment-form .remember {")
		} else {
			b.WriteString("#comment-form .name-field, #comment-form .mail-field, #comment-form .site-field, #comment-form .remember {")
		}
		b.WriteString("display:none;}</style>\n")
	}
	return b.String()
}

// PublicCommentFormBeforeContent pre-fills an untouched comment form with
// the visitor profile
func (p *Plugin) PublicCommentFormBeforeContent(ctx context.Context) {
	bc := blog.FromContext(ctx)
	if !bc.Check() || bc.Preview.Content != "" {
		return
	}
	bc.Preview.Name = bc.UserInfo("user_cn")
	bc.Preview.Mail = bc.UserInfo("user_email")
	bc.Preview.Site = bc.UserInfo("user_url")
}
