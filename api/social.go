package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	shared "ripple-shared"
)

func (a *Api) AddComment(blogId int64, req shared.CreateCommentRequest) (*shared.Comment, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/comments?blogId=%d", GetApiHost(), blogId)

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

	var comment shared.Comment
	err = json.NewDecoder(resp.Body).Decode(&comment)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &comment, nil
}

func (a *Api) UpdateComment(commentId int64, req shared.CreateCommentRequest) (*shared.Comment, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/comments/%d", GetApiHost(), commentId)

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

	var comment shared.Comment
	err = json.NewDecoder(resp.Body).Decode(&comment)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &comment, nil
}

func (a *Api) DeleteComment(commentId int64) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/comments/%d", GetApiHost(), commentId)

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

func (a *Api) ListCommentsByBlog(blogId int64) ([]*shared.Comment, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/comments/by-blog/%d", GetApiHost(), blogId)

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var comments []*shared.Comment
	err = json.NewDecoder(resp.Body).Decode(&comments)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return comments, nil
}

func (a *Api) ListCommentsByUser(userId int64) ([]*shared.Comment, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/comments/by-user/%d", GetApiHost(), userId)

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var comments []*shared.Comment
	err = json.NewDecoder(resp.Body).Decode(&comments)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return comments, nil
}

func (a *Api) Like(blogId int64) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/likes?blogId=%d", GetApiHost(), blogId)

	resp, err := authenticatedFastClient.Post(serverUrl, "application/json", nil)
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

func (a *Api) Unlike(blogId int64) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/likes?blogId=%d", GetApiHost(), blogId)

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

func (a *Api) GetLikeStatus(blogId int64) (*shared.LikeStatus, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/likes/status?blogId=%d", GetApiHost(), blogId)

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var status shared.LikeStatus
	err = json.NewDecoder(resp.Body).Decode(&status)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &status, nil
}

func (a *Api) Follow(userId int64) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/follows/%d", GetApiHost(), userId)

	resp, err := authenticatedFastClient.Post(serverUrl, "application/json", nil)
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

func (a *Api) Unfollow(userId int64) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/follows/%d", GetApiHost(), userId)

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

func (a *Api) GetFollowingIds() ([]int64, *shared.ApiError) {
	serverUrl := GetApiHost() + "/follows/ids"

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var ids []int64
	err = json.NewDecoder(resp.Body).Decode(&ids)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return ids, nil
}

func (a *Api) GetFollowCounts(userId int64) (*shared.FollowCounts, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/follows/counts/%d", GetApiHost(), userId)

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var counts shared.FollowCounts
	err = json.NewDecoder(resp.Body).Decode(&counts)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &counts, nil
}

func (a *Api) CreateReport(req shared.CreateReportRequest) (*shared.ReportResponse, *shared.ApiError) {
	serverUrl := GetApiHost() + "/reports"

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

	var report shared.ReportResponse
	err = json.NewDecoder(resp.Body).Decode(&report)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &report, nil
}
