package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	shared "ripple-shared"
)

func (a *Api) ListNotifications() ([]*shared.Notification, *shared.ApiError) {
	serverUrl := GetApiHost() + "/notifications"

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var notifications []*shared.Notification
	err = json.NewDecoder(resp.Body).Decode(&notifications)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return notifications, nil
}

func (a *Api) GetUnreadNotificationCount() (int, *shared.ApiError) {
	serverUrl := GetApiHost() + "/notifications/unread-count"

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

func (a *Api) MarkNotificationRead(notificationId int64) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/notifications/%d/read", GetApiHost(), notificationId)

	request, err := http.NewRequest(http.MethodPut, serverUrl, nil)
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

func (a *Api) DeleteNotification(notificationId int64) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/notifications/%d", GetApiHost(), notificationId)

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
