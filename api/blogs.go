package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"ripple-cli/types"

	shared "ripple-shared"
)

func (a *Api) CreateBlog(req shared.CreateBlogRequest) (*shared.Blog, *shared.ApiError) {
	serverUrl := GetApiHost() + "/blogs"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := authenticatedFastClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var blog shared.Blog
	err = json.NewDecoder(resp.Body).Decode(&blog)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &blog, nil
}

// CreateBlogWithMedia posts the blog fields and up to five attachments as
// one multipart request.
func (a *Api) CreateBlogWithMedia(req shared.CreateBlogRequest, files []types.MediaUpload) (*shared.Blog, *shared.ApiError) {
	serverUrl := GetApiHost() + "/blogs/with-media"

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("title", req.Title); err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error writing form field: %v", err)}
	}
	if err := writer.WriteField("content", req.Content); err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error writing form field: %v", err)}
	}
	if req.Status != "" {
		if err := writer.WriteField("status", req.Status); err != nil {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error writing form field: %v", err)}
		}
	}

	for _, file := range files {
		part, err := writer.CreateFormFile("files", file.Name)
		if err != nil {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating form file: %v", err)}
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error writing form file: %v", err)}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error finalizing form: %v", err)}
	}

	resp, err := authenticatedUploadClient.Post(serverUrl, writer.FormDataContentType(), &body)
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var blog shared.Blog
	err = json.NewDecoder(resp.Body).Decode(&blog)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &blog, nil
}

func (a *Api) GetBlog(blogId int64) (*shared.Blog, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/blogs/%d", GetApiHost(), blogId)

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var blog shared.Blog
	err = json.NewDecoder(resp.Body).Decode(&blog)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &blog, nil
}

func (a *Api) UpdateBlog(blogId int64, req shared.UpdateBlogRequest) (*shared.Blog, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/blogs/%d", GetApiHost(), blogId)

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequest(http.MethodPut, serverUrl, bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var blog shared.Blog
	err = json.NewDecoder(resp.Body).Decode(&blog)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &blog, nil
}

func (a *Api) DeleteBlog(blogId int64) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/blogs/%d", GetApiHost(), blogId)

	request, err := http.NewRequest(http.MethodDelete, serverUrl, nil)
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return handleApiError(resp, errorBody)
	}

	return nil
}

func (a *Api) ListBlogsByUser(userId int64) ([]*shared.Blog, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/blogs/by-user/%d", GetApiHost(), userId)

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var blogs []*shared.Blog
	err = json.NewDecoder(resp.Body).Decode(&blogs)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return blogs, nil
}

func (a *Api) GetFeed() ([]*shared.Blog, *shared.ApiError) {
	serverUrl := GetApiHost() + "/feed"

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var blogs []*shared.Blog
	err = json.NewDecoder(resp.Body).Decode(&blogs)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return blogs, nil
}
