package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	shared "ripple-shared"
)

func (a *Api) ListAdminUsers() ([]*shared.User, *shared.ApiError) {
	serverUrl := GetApiHost() + "/admin/users"

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var users []*shared.User
	err = json.NewDecoder(resp.Body).Decode(&users)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return users, nil
}

func (a *Api) ListAdminPosts() ([]*shared.Blog, *shared.ApiError) {
	serverUrl := GetApiHost() + "/admin/posts"

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

func (a *Api) ListAdminReports() ([]*shared.AdminReportItem, *shared.ApiError) {
	serverUrl := GetApiHost() + "/admin/reports"

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var reports []*shared.AdminReportItem
	err = json.NewDecoder(resp.Body).Decode(&reports)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return reports, nil
}

func (a *Api) GetAdminReportsCount() (int, *shared.ApiError) {
	serverUrl := GetApiHost() + "/admin/reports/count"

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return 0, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return 0, handleApiError(resp, errorBody)
	}

	var count shared.CountResponse
	err = json.NewDecoder(resp.Body).Decode(&count)
	if err != nil {
		return 0, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return count.Count, nil
}

func (a *Api) GetAdminFollowerCounts() ([]*shared.UserFollowerCount, *shared.ApiError) {
	serverUrl := GetApiHost() + "/admin/followers/counts"

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var counts []*shared.UserFollowerCount
	err = json.NewDecoder(resp.Body).Decode(&counts)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return counts, nil
}

func (a *Api) UpdateUserRole(userId int64, role string) (*shared.User, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/admin/users/%d/role", GetApiHost(), userId)
	return a.putAdminUser(serverUrl, shared.UpdateUserRoleRequest{Role: role})
}

func (a *Api) UpdateUserStatus(userId int64, status string) (*shared.User, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/admin/users/%d/status", GetApiHost(), userId)
	return a.putAdminUser(serverUrl, shared.UpdateUserStatusRequest{Status: status})
}

func (a *Api) putAdminUser(serverUrl string, payload any) (*shared.User, *shared.ApiError) {
	reqBytes, err := json.Marshal(payload)
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

	var user shared.User
	err = json.NewDecoder(resp.Body).Decode(&user)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &user, nil
}

func (a *Api) UpdateBlogStatus(blogId int64, status string) (*shared.Blog, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/admin/posts/%d/status", GetApiHost(), blogId)

	reqBytes, err := json.Marshal(shared.UpdateBlogStatusRequest{Status: status})
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

func (a *Api) DeleteReport(reportId int64) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/admin/reports/%d", GetApiHost(), reportId)

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
