package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	shared "ripple-shared"
)

func (a *Api) Register(req shared.RegisterRequest) (*shared.AuthResponse, *shared.ApiError) {
	serverUrl := GetApiHost() + "/users/register"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := unauthenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var respBody shared.AuthResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) SignIn(req shared.LoginRequest) (*shared.AuthResponse, *shared.ApiError) {
	serverUrl := GetApiHost() + "/users/login"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := unauthenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var respBody shared.AuthResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) GetMe() (*shared.User, *shared.ApiError) {
	serverUrl := GetApiHost() + "/users/me"

	resp, err := authenticatedFastClient.Get(serverUrl)
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

func (a *Api) ListUsers() ([]*shared.User, *shared.ApiError) {
	serverUrl := GetApiHost() + "/users"

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

func (a *Api) GetUser(userId int64) (*shared.User, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/users/%d", GetApiHost(), userId)

	resp, err := authenticatedFastClient.Get(serverUrl)
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

func (a *Api) UpdateUser(userId int64, req shared.UpdateUserRequest) (*shared.User, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/users/%d", GetApiHost(), userId)

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

	var user shared.User
	err = json.NewDecoder(resp.Body).Decode(&user)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &user, nil
}

func (a *Api) DeleteUser(userId int64) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/users/%d", GetApiHost(), userId)

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
