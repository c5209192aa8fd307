package blog

import (
	"context"
	"errors"
	"testing"

	"frontsession/internal/behavior"
	"frontsession/internal/models"
	"frontsession/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextUser(t *testing.T) {
	bc := &Context{Settings: settings.Map{}}
	assert.Equal(t, "", bc.UserID())
	assert.False(t, bc.Check())
	assert.Equal(t, "", bc.UserInfo("user_cn"))

	bc.User = &models.User{ID: 7, Username: "jc", Email: "jc@example.org", URL: "https://jc.example.org", IsActivated: true}
	assert.Equal(t, "7", bc.UserID())
	assert.True(t, bc.Check())
	assert.Equal(t, "jc", bc.UserInfo("user_cn"))
	assert.Equal(t, "jc@example.org", bc.UserInfo("user_email"))
	assert.Equal(t, "https://jc.example.org", bc.UserInfo("user_url"))

	bc.User.DisplayName = "Jean-Christian"
	assert.Equal(t, "Jean-Christian", bc.UserInfo("user_cn"))

	bc.User.Status = models.UserStatusBanned
	assert.Equal(t, "7", bc.UserID())
	assert.False(t, bc.Check())
}

func TestContextURLFor(t *testing.T) {
	urls := NewURLs()
	urls.Register("FrontendSession", "session")
	bc := &Context{BlogURL: "http://blog.test/", URLs: urls}

	assert.Equal(t, "http://blog.test/session", bc.URLFor("FrontendSession"))
	assert.Equal(t, "http://blog.test/", bc.URLFor("default"))
}

func TestFromContextDefaultsToAnonymous(t *testing.T) {
	bc := FromContext(context.Background())
	require.NotNil(t, bc)
	assert.Equal(t, "", bc.UserID())
	assert.Equal(t, "en", bc.Lang())
}

func TestRecordsExtend(t *testing.T) {
	rs := NewPostRecords([]models.Post{{ID: 1, OpenComment: true}, {ID: 2}})
	assert.True(t, rs.Items[0].CommentsActive())
	assert.False(t, rs.Items[1].CommentsActive())

	rs.Extend(func(r *PostRecord) bool { return r.ID == 2 })
	assert.False(t, rs.Items[0].CommentsActive())
	assert.True(t, rs.Items[1].CommentsActive())
	assert.Equal(t, uint(1), rs.First().ID)
	assert.Nil(t, NewPostRecords(nil).First())
}

func TestCommentsPrepare(t *testing.T) {
	stack := behavior.NewStack()
	svc := NewComments(nil, stack)
	ctx := WithContext(context.Background(), &Context{Settings: settings.Map{SettingCommentsPub: "1"}})

	cur := &models.Comment{PostID: 1, Content: "hi"}
	require.NoError(t, svc.Prepare(ctx, cur))
	assert.Equal(t, models.CommentPublished, cur.Status)

	refused := errors.New("nope")
	stack.Add(behavior.PublicBeforeCommentCreate, func(context.Context, any) error { return refused })
	err := svc.Prepare(ctx, cur)
	var rej *RejectedError
	require.ErrorAs(t, err, &rej)
	assert.ErrorIs(t, err, refused)
	assert.Equal(t, "nope", err.Error())
}

func TestCommentsPrepareDefaultsToPending(t *testing.T) {
	svc := NewComments(nil, behavior.NewStack())
	cur := &models.Comment{Content: "hi"}
	require.NoError(t, svc.Prepare(context.Background(), cur))
	assert.Equal(t, models.CommentPending, cur.Status)
}

func TestCommentsRequireContentAndAuthor(t *testing.T) {
	called := false
	stack := behavior.NewStack()
	stack.Add(behavior.PublicBeforeCommentCreate, func(context.Context, any) error {
		called = true
		return nil
	})
	svc := NewComments(nil, stack)

	err := svc.Create(context.Background(), &models.Comment{Author: "x", Content: "  "})
	assert.ErrorIs(t, err, ErrContentRequired)
	assert.False(t, called)

	err = svc.Create(context.Background(), &models.Comment{Content: "hello"})
	assert.ErrorIs(t, err, ErrAuthorRequired)
	assert.True(t, called)
}

func TestThemes(t *testing.T) {
	assert.Equal(t, "mustek", DefaultThemes.TplSet("ductile"))
	assert.Equal(t, "dotty", DefaultThemes.TplSet("berlin"))
	assert.Equal(t, "", DefaultThemes.TplSet("custom"))
}
