package articleview

import (
	"blog-engagement/internal/domain"
)

// Card is one article in the list together with this device's like state.
type Card struct {
	Article domain.Article
	Liked   bool
	Pending bool
}

// Detail is the opened article with its comments and the comment draft.
type Detail struct {
	ArticleID  string
	Comments   []domain.Comment
	Draft      string
	Submitting bool
}

// State is everything the view renders. It is only changed by apply.
type State struct {
	Query         string
	Cards         []Card
	NextPageToken string
	Detail        *Detail
}

func (s *State) card(articleID string) *Card {
	for i := range s.Cards {
		if s.Cards[i].Article.ID == articleID {
			return &s.Cards[i]
		}
	}
	return nil
}

// clone returns a deep copy safe to hand out to callers.
func (s State) clone() State {
	out := s
	out.Cards = append([]Card(nil), s.Cards...)
	if s.Detail != nil {
		d := *s.Detail
		d.Comments = append([]domain.Comment(nil), s.Detail.Comments...)
		out.Detail = &d
	}
	return out
}

type action interface{ isAction() }

type (
	pageLoaded struct {
		query    string
		articles []domain.Article
		liked    func(string) bool
		next     string
	}
	articleOpened struct {
		article  domain.Article
		liked    bool
		comments []domain.Comment
	}
	likeStarted   struct{ articleID string }
	likeFailed    struct{ articleID string }
	likeSucceeded struct {
		articleID string
		result    domain.LikeResult
	}
	shareRecorded struct {
		articleID string
		count     int64
	}
	draftChanged     struct{ text string }
	commentStarted   struct{}
	commentFailed    struct{ articleID string }
	commentSucceeded struct {
		articleID string
		comment   domain.Comment
	}
)

func (pageLoaded) isAction()       {}
func (articleOpened) isAction()    {}
func (likeStarted) isAction()      {}
func (likeFailed) isAction()       {}
func (likeSucceeded) isAction()    {}
func (shareRecorded) isAction()    {}
func (draftChanged) isAction()     {}
func (commentStarted) isAction()   {}
func (commentFailed) isAction()    {}
func (commentSucceeded) isAction() {}

// reduce returns the state after a. It never performs I/O.
func reduce(s State, a action) State {
	s = s.clone()

	switch a := a.(type) {
	case pageLoaded:
		s.Query = a.query
		s.NextPageToken = a.next
		s.Cards = make([]Card, 0, len(a.articles))
		for _, article := range a.articles {
			s.Cards = append(s.Cards, Card{Article: article, Liked: a.liked(article.ID)})
		}

	case articleOpened:
		if c := s.card(a.article.ID); c != nil {
			c.Article = a.article
			c.Liked = a.liked
		} else {
			s.Cards = append(s.Cards, Card{Article: a.article, Liked: a.liked})
		}
		s.Detail = &Detail{ArticleID: a.article.ID, Comments: a.comments}

	case likeStarted:
		if c := s.card(a.articleID); c != nil {
			c.Pending = true
		}

	case likeFailed:
		if c := s.card(a.articleID); c != nil {
			c.Pending = false
		}

	case likeSucceeded:
		if c := s.card(a.articleID); c != nil {
			c.Pending = false
			c.Liked = a.result.Liked
			c.Article.LikesCount = a.result.LikesCount
		}

	case shareRecorded:
		if c := s.card(a.articleID); c != nil {
			c.Article.SharesCount = a.count
		}

	case draftChanged:
		if s.Detail != nil {
			s.Detail.Draft = a.text
		}

	case commentStarted:
		if s.Detail != nil {
			s.Detail.Submitting = true
		}

	case commentFailed:
		if s.Detail != nil && s.Detail.ArticleID == a.articleID {
			s.Detail.Submitting = false
		}

	case commentSucceeded:
		// another article may have been opened while the comment was posted
		if s.Detail != nil && s.Detail.ArticleID == a.articleID {
			s.Detail.Submitting = false
			s.Detail.Draft = ""
			s.Detail.Comments = append([]domain.Comment{a.comment}, s.Detail.Comments...)
		}
		if c := s.card(a.articleID); c != nil {
			c.Article.CommentsCount++
		}
	}

	return s
}
