package author_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"libraryapi/internal/author"
	"libraryapi/internal/author/mocks"
	"libraryapi/internal/testutil"
)

const authorID = "6f1b2d3c-0000-4000-8000-000000000002"

func newTestHandler(t *testing.T) (*author.HTTPHandler, *mocks.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockRepository(ctrl)
	return author.NewHTTPHandler(author.NewService(repo)), repo
}

func TestHTTPHandler_List(t *testing.T) {
	handler, repo := newTestHandler(t)
	repo.EXPECT().
		ListWithBooks(gomock.Any()).
		Return([]author.Author{testutil.TestAuthor}, nil)

	w := httptest.NewRecorder()
	handler.List(w, testutil.NewRequest(http.MethodGet, "/authors", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Test Author")
}

func TestHTTPHandler_Search(t *testing.T) {
	t.Run("bad request - empty query", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		handler.Search(w, testutil.NewRequest(http.MethodGet, "/authorsearch", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found - zero matches", func(t *testing.T) {
		handler, repo := newTestHandler(t)
		repo.EXPECT().
			SearchByName(gomock.Any(), "nobody").
			Return([]author.Author{}, nil)

		w := httptest.NewRecorder()
		handler.Search(w, testutil.NewRequest(http.MethodGet, "/authorsearch?query=nobody", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		handler, repo := newTestHandler(t)
		repo.EXPECT().
			SearchByName(gomock.Any(), "Test").
			Return([]author.Author{testutil.TestAuthor}, nil)

		w := httptest.NewRecorder()
		handler.Search(w, testutil.NewRequest(http.MethodGet, "/authorsearch?query=Test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	t.Run("validation error - missing biography", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewRequest(http.MethodPost, "/author", map[string]string{
			"name": "Only a name",
		}))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := testutil.DecodeBody(w)
		assert.Equal(t, "Validation Error!", body["message"])
	})

	t.Run("success", func(t *testing.T) {
		handler, repo := newTestHandler(t)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewRequest(http.MethodPost, "/author", map[string]string{
			"name":      "A Name",
			"biography": "A biography",
		}))

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestHTTPHandler_Show(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		handler, repo := newTestHandler(t)
		repo.EXPECT().
			GetByID(gomock.Any(), authorID).
			Return(author.Author{}, author.ErrNotFound)

		r := testutil.NewRequest(http.MethodGet, "/author/"+authorID, nil)
		r.SetPathValue("id", authorID)
		w := httptest.NewRecorder()
		handler.Show(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		handler, repo := newTestHandler(t)
		repo.EXPECT().
			GetByID(gomock.Any(), authorID).
			Return(testutil.TestAuthor, nil)

		r := testutil.NewRequest(http.MethodGet, "/author/"+authorID, nil)
		r.SetPathValue("id", authorID)
		w := httptest.NewRecorder()
		handler.Show(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := testutil.DecodeBody(w)
		assert.Equal(t, "Test Author", body["name"])
	})

	t.Run("success - books is an empty list, not null", func(t *testing.T) {
		handler, repo := newTestHandler(t)
		repo.EXPECT().
			GetByID(gomock.Any(), authorID).
			Return(author.Author{ID: authorID, Name: "N", Biography: "B"}, nil)

		r := testutil.NewRequest(http.MethodGet, "/author/"+authorID, nil)
		r.SetPathValue("id", authorID)
		w := httptest.NewRecorder()
		handler.Show(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := testutil.DecodeBody(w)
		assert.Equal(t, []any{}, body["books"])
	})
}

func TestHTTPHandler_Books(t *testing.T) {
	t.Run("not found - unknown author", func(t *testing.T) {
		handler, repo := newTestHandler(t)
		repo.EXPECT().
			BooksOf(gomock.Any(), authorID).
			Return(nil, author.ErrNotFound)

		r := testutil.NewRequest(http.MethodGet, "/authorbooks/"+authorID, nil)
		r.SetPathValue("id", authorID)
		w := httptest.NewRecorder()
		handler.Books(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success - empty list for author with no books", func(t *testing.T) {
		handler, repo := newTestHandler(t)
		repo.EXPECT().
			BooksOf(gomock.Any(), authorID).
			Return([]author.Book{}, nil)

		r := testutil.NewRequest(http.MethodGet, "/authorbooks/"+authorID, nil)
		r.SetPathValue("id", authorID)
		w := httptest.NewRecorder()
		handler.Books(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("success - author's books", func(t *testing.T) {
		handler, repo := newTestHandler(t)
		repo.EXPECT().
			BooksOf(gomock.Any(), authorID).
			Return([]author.Book{{ID: "b1", Title: "A Title", Description: "d", Views: 2}}, nil)

		r := testutil.NewRequest(http.MethodGet, "/authorbooks/"+authorID, nil)
		r.SetPathValue("id", authorID)
		w := httptest.NewRecorder()
		handler.Books(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "A Title")
	})
}

func TestHTTPHandler_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		handler, repo := newTestHandler(t)
		repo.EXPECT().
			Update(gomock.Any(), authorID, "N", "B").
			Return(author.ErrNotFound)

		r := testutil.NewRequest(http.MethodPut, "/author/"+authorID, map[string]string{
			"name":      "N",
			"biography": "B",
		})
		r.SetPathValue("id", authorID)
		w := httptest.NewRecorder()
		handler.Update(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		handler, repo := newTestHandler(t)
		repo.EXPECT().
			Update(gomock.Any(), authorID, "N", "B").
			Return(nil)

		r := testutil.NewRequest(http.MethodPut, "/author/"+authorID, map[string]string{
			"name":      "N",
			"biography": "B",
		})
		r.SetPathValue("id", authorID)
		w := httptest.NewRecorder()
		handler.Update(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHTTPHandler_Destroy(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		handler, repo := newTestHandler(t)
		repo.EXPECT().
			Delete(gomock.Any(), authorID).
			Return(author.ErrNotFound)

		r := testutil.NewRequest(http.MethodDelete, "/author/"+authorID, nil)
		r.SetPathValue("id", authorID)
		w := httptest.NewRecorder()
		handler.Destroy(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		handler, repo := newTestHandler(t)
		repo.EXPECT().
			Delete(gomock.Any(), authorID).
			Return(nil)

		r := testutil.NewRequest(http.MethodDelete, "/author/"+authorID, nil)
		r.SetPathValue("id", authorID)
		w := httptest.NewRecorder()
		handler.Destroy(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
